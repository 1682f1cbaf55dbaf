package postgre

import (
	"fmt"
	"strings"
)

// selectJobs is the shared projection: job columns, employer name, and the
// tag names aggregated into one comma-joined column.
const selectJobs = `
	SELECT j.id, j.title, j.location, j.salary, j.description, j.created_at,
	       e.name AS company_name,
	       COALESCE(string_agg(t.name, ',' ORDER BY t.name), '') AS tag_names
	FROM jobs j
	JOIN employers e ON e.id = j.employer_id
	LEFT JOIN job_tag jt ON jt.job_id = j.id
	LEFT JOIN tags t ON t.id = jt.tag_id`

const groupJobs = ` GROUP BY j.id, e.name`

// salaryExpr interprets the currency-formatted salary text numerically:
// strip the " EGP" suffix and thousands separators, then cast.
const salaryExpr = `CAST(REPLACE(REPLACE(j.salary, ' EGP', ''), ',', '') AS BIGINT)`

// buildListQuery assembles the optional title filter plus ordering and
// limit. The filter value is always bound as a parameter, never
// interpolated — orderBy comes only from the fixed expressions above.
func buildListQuery(titleFilter, orderBy string, limit int) (string, []any) {
	var sb strings.Builder
	var args []any
	idx := 1

	sb.WriteString(selectJobs)

	if titleFilter != "" {
		sb.WriteString(fmt.Sprintf(" WHERE j.title ILIKE $%d ESCAPE '\\'", idx))
		args = append(args, "%"+escapeLikePattern(titleFilter)+"%")
		idx++
	}

	sb.WriteString(groupJobs)
	sb.WriteString(" ORDER BY " + orderBy)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", idx))
	args = append(args, limit)

	return sb.String(), args
}

// escapeLikePattern neutralizes LIKE metacharacters in user-derived search
// terms so they match literally.
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
