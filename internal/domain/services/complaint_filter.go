package services

import (
	"fmt"
	"strings"

	"github.com/ajju-1209/hostel-management/internal/domain/models"

	"gorm.io/gorm"
)

// ComplaintFilter 按 issueType 和 status 过滤投诉，空集合表示不限制
type ComplaintFilter struct {
	IssueTypes []string
	Statuses   []models.ComplaintStatus
}

// NewComplaintFilter builds a set-membership filter. A single value behaves
// like a one-element set; empty values are ignored. issueType is a free
// category tag, status must be one of the known states.
func NewComplaintFilter(issueTypes, statuses []string) (ComplaintFilter, error) {
	var f ComplaintFilter
	f.IssueTypes = uniqueNonEmpty(issueTypes)

	for _, s := range uniqueNonEmpty(statuses) {
		st, err := models.ParseComplaintStatus(s)
		if err != nil {
			return ComplaintFilter{}, fmt.Errorf("%w: %q", ErrUnsupportedStatus, s)
		}
		f.Statuses = append(f.Statuses, st)
	}
	return f, nil
}

// Apply 把过滤条件加到查询上
func (f ComplaintFilter) Apply(db *gorm.DB) *gorm.DB {
	if len(f.IssueTypes) > 0 {
		db = db.Where("issue_type IN ?", f.IssueTypes)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = string(st)
		}
		db = db.Where("status IN ?", statuses)
	}
	return db
}

func uniqueNonEmpty(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
