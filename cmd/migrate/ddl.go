package main

import (
	"fmt"
	"regexp"
	"strings"
)

// databasePath is a parsed Spanner database name.
type databasePath struct {
	Project  string
	Instance string
	Database string
}

func parseDatabasePath(name string) (databasePath, error) {
	parts := strings.Split(name, "/")
	if len(parts) != 6 || parts[0] != "projects" || parts[2] != "instances" || parts[4] != "databases" {
		return databasePath{}, fmt.Errorf("invalid spanner database name %q", name)
	}
	return databasePath{Project: parts[1], Instance: parts[3], Database: parts[5]}, nil
}

func (p databasePath) instanceName() string {
	return fmt.Sprintf("projects/%s/instances/%s", p.Project, p.Instance)
}

func (p databasePath) String() string {
	return p.instanceName() + "/databases/" + p.Database
}

func splitDDLStatements(content string) []string {
	// Remove comments and empty lines
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createObject = regexp.MustCompile(`(?is)^CREATE\s+(?:UNIQUE\s+|NULL_FILTERED\s+)*(TABLE|INDEX)\s+` + "`?" + `([A-Za-z_][A-Za-z0-9_]*)`)

// objectKey identifies the table or index a CREATE statement defines.
// Other statements return "".
func objectKey(stmt string) string {
	m := createObject.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2])
}

// pendingStatements drops CREATE statements for objects the live schema
// already has, so a migration file can be applied more than once.
func pendingStatements(existing, statements []string) []string {
	have := make(map[string]bool, len(existing))
	for _, s := range existing {
		if k := objectKey(s); k != "" {
			have[k] = true
		}
	}

	var out []string
	for _, s := range statements {
		if k := objectKey(s); k != "" && have[k] {
			continue
		}
		out = append(out, s)
	}
	return out
}
