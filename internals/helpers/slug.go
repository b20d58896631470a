// file: internals/helpers/slug.go
package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var dashRunRe = regexp.MustCompile(`-+`)

// GenerateSlug normalises a display name to a URL slug: lower-case, runs of
// non-alphanumerics collapse to one dash, dashes trimmed at both ends.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	return dashRunRe.ReplaceAllString(out, "-")
}

// SlugOptions describes where uniqueness is checked.
type SlugOptions struct {
	Table            string
	SlugColumn       string
	SoftDeleteColumn string         // empty = no soft delete
	Filters          map[string]any // tenant/scope filters
	MaxLen           int
	DefaultBase      string
}

func slugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	for k, v := range opts.Filters {
		q = q.Where(fmt.Sprintf("%s = ?", k), v)
	}
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug tries base, then base-2, base-3, ... within the scope
// defined by opts. Case-insensitive, soft-delete aware.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base = GenerateSlug(base)
	if base == "" {
		base = GenerateSlug(opts.DefaultBase)
	}
	if base == "" {
		base = "x"
	}
	if len(base) > maxLen {
		base = strings.Trim(base[:maxLen], "-")
	}

	taken, err := slugTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suffix := fmt.Sprintf("-%d", i)
		candidate := base
		if len(candidate)+len(suffix) > maxLen {
			cut := maxLen - len(suffix)
			if cut < 1 {
				cut = 1
			}
			candidate = strings.Trim(candidate[:cut], "-")
		}
		candidate += suffix

		taken, err = slugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
