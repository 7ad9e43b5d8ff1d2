package validator

import (
	"mime/multipart"
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation, YYYY-MM
func IsValidMonth(monthStr string) bool {
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Z]{2,4}-\d{3,6}$`)

func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

const (
	defaultPageSize = 20
	minPageSize     = 10
	maxPageSize     = 100
)

// NormalizePagination enforces the shared listing contract: page >= 1,
// limit clamped to [10,100] with a default of 20. Out-of-range values
// are clamped, not rejected.
func NormalizePagination(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	switch {
	case *limit == 0:
		*limit = defaultPageSize
	case *limit < minPageSize:
		*limit = minPageSize
	case *limit > maxPageSize:
		*limit = maxPageSize
	}
}

// CheckProofPhoto validates an uploaded attendance selfie. The photo is
// optional; when present it must be a jpg/jpeg/png under 10MB.
func CheckProofPhoto(fh *multipart.FileHeader) *ValidationError {
	if fh == nil {
		return nil
	}

	filename := fh.Filename
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return &ValidationError{Field: "photo", Message: "invalid file type: only jpg, jpeg, png allowed"}
	}
	ext := strings.ToLower(filename[idx:])
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return &ValidationError{Field: "photo", Message: "invalid file type: only jpg, jpeg, png allowed"}
	}
	if fh.Size > 10<<20 {
		return &ValidationError{Field: "photo", Message: "proof photo size must not exceed 10MB"}
	}
	return nil
}
