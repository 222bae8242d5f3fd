package save_product

import (
	"math"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/light-bringer/machinery-catalog/internal/app/product/domain"
	"github.com/light-bringer/machinery-catalog/internal/media/videometa"
)

// allowedTypes maps every accepted MIME type to its media kind.
var allowedTypes = []struct {
	mime string
	kind domain.MediaKind
}{
	{"image/jpeg", domain.MediaImage},
	{"image/png", domain.MediaImage},
	{"image/gif", domain.MediaImage},
	{"video/mp4", domain.MediaVideo},
	{"video/webm", domain.MediaVideo},
}

// validatedFile is a file that passed every check, tagged with its kind.
type validatedFile struct {
	data        []byte
	contentType string
	kind        domain.MediaKind
}

func (i *Interactor) validate(req *Request) (*validatedFile, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Category) == "" {
		return nil, domain.ErrRequiredFieldsMissing
	}

	creating := req.ProductID == ""
	if creating && i.policy.RequireMediaOnCreate && req.File == nil && strings.TrimSpace(req.MediaURL) == "" {
		return nil, domain.ErrMediaRequired
	}

	if req.File == nil {
		return nil, nil
	}
	return i.validateFile(req.File)
}

func (i *Interactor) validateFile(f *File) (*validatedFile, error) {
	if int64(len(f.Data)) > i.policy.MaxUploadBytes {
		return nil, domain.ErrMediaTooLarge
	}

	detected := mimetype.Detect(f.Data)
	var vf *validatedFile
	for _, t := range allowedTypes {
		if detected.Is(t.mime) {
			vf = &validatedFile{data: f.Data, contentType: t.mime, kind: t.kind}
			break
		}
	}
	if vf == nil {
		return nil, domain.ErrUnsupportedMediaType
	}

	if vf.kind == domain.MediaVideo {
		if err := i.checkVideoDuration(vf, f.DurationSeconds); err != nil {
			return nil, err
		}
	}

	return vf, nil
}

// checkVideoDuration enforces the ceiling on the length read from the
// container header. A length declared by the client can only tighten the
// check; it must be finite and non-negative when present.
func (i *Interactor) checkVideoDuration(vf *validatedFile, declaredSeconds float64) error {
	if math.IsNaN(declaredSeconds) || math.IsInf(declaredSeconds, 0) || declaredSeconds < 0 {
		return domain.ErrMediaDurationUnknown
	}

	d, err := videometa.Duration(vf.contentType, vf.data)
	if err != nil {
		return domain.ErrMediaDurationUnknown
	}
	if d > i.policy.MaxVideoDuration || declaredSeconds > i.policy.MaxVideoDuration.Seconds() {
		return domain.ErrMediaTooLong
	}
	return nil
}
