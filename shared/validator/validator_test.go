package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"popflea/shared/validator"
	"strings"
	"testing"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Adults   int    `validate:"gte=1,lte=20" json:"adults"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

type FileTestStruct struct {
	Attachment *multipart.FileHeader `validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Adults:   2,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Adults:   2,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Adults:   2,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "adults out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Adults:   50,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Adults:   2,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid json body",
			body:        `{"name":"John Doe","email":"john@example.com","adults":2,"category":"user"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"name":"","email":"john@example.com","adults":2,"category":"user"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ValidTestStruct{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateFileHeader(t *testing.T) {
	fileHeader := func(contentType string, size int64) *multipart.FileHeader {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", contentType)

		return &multipart.FileHeader{
			Filename: "screenshot.png",
			Header:   header,
			Size:     size,
		}
	}

	tests := []struct {
		name        string
		data        *FileTestStruct
		expectError bool
	}{
		{
			name:        "no file is allowed",
			data:        &FileTestStruct{},
			expectError: false,
		},
		{
			name:        "allowed mimetype within size",
			data:        &FileTestStruct{Attachment: fileHeader("image/png", 1024)},
			expectError: false,
		},
		{
			name:        "disallowed mimetype",
			data:        &FileTestStruct{Attachment: fileHeader("application/pdf", 1024)},
			expectError: true,
		},
		{
			name:        "file too large",
			data:        &FileTestStruct{Attachment: fileHeader("image/png", 6*1024*1024)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("john@example.com", "required,email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected validation error, got nil")
	}

	if err := validator.ValidateVar("2025-12-24", "datetime=2006-01-02"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := validator.ValidateVar("christmas", "datetime=2006-01-02")
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if got, want := err.Error(), "value must follow the 2006-01-02 date format"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
