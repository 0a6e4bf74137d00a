package helpers

import "strings"

// SearchPattern builds an ILIKE pattern for a free-text query, escaping
// the LIKE metacharacters so user input matches literally.
func SearchPattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
