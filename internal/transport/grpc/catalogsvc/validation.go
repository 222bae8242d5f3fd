package catalogsvc

import (
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// validateGetProductRequest requires a non-empty "id".
func validateGetProductRequest(req *structpb.Struct) error {
	if stringField(req, "id") == "" {
		return status.Error(codes.InvalidArgument, "id is required")
	}
	return nil
}

// validateListProductsRequest rejects fields of the wrong type so typos in
// clients fail loudly instead of silently dropping a filter.
func validateListProductsRequest(req *structpb.Struct) error {
	kinds := map[string]func(*structpb.Value) bool{
		"q":          isString,
		"categories": isList,
		"minPrice":   isPriceBound,
		"maxPrice":   isPriceBound,
		"inStock":    isBool,
		"onSale":     isBool,
		"sort":       isString,
		"page":       isCount,
		"pageSize":   isCount,
	}
	for name, v := range req.GetFields() {
		check, known := kinds[name]
		if !known {
			return status.Errorf(codes.InvalidArgument, "unknown field %q", name)
		}
		if !check(v) {
			return status.Errorf(codes.InvalidArgument, "field %q has the wrong type", name)
		}
	}
	return nil
}

func isString(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_StringValue)
	return ok
}

func isNumber(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NumberValue)
	return ok
}

func isBool(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_BoolValue)
	return ok
}

func isList(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_ListValue)
	return ok
}

// maxCount bounds page and pageSize so they convert to int on every platform.
const maxCount = math.MaxInt32

// isCount accepts whole numbers in [0, maxCount].
func isCount(v *structpb.Value) bool {
	if !isNumber(v) {
		return false
	}
	n := v.GetNumberValue()
	return n >= 0 && n <= maxCount && n == math.Trunc(n)
}

// isPriceBound accepts finite numbers or decimal strings.
func isPriceBound(v *structpb.Value) bool {
	if isString(v) {
		return true
	}
	if !isNumber(v) {
		return false
	}
	n := v.GetNumberValue()
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
