package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/electrostore/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type registerInput struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", func(c *gin.Context) {
		var req registerInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns per field errors with JSON tag names", func(t *testing.T) {
		body := strings.NewReader(`{"email": "invalid", "password": "ab"}`)
		req := httptest.NewRequest("POST", "/register", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		require.Len(t, resp.Error.Details, 2)

		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"email": "shopper@example.com", "password": "secret1"}`)
		req := httptest.NewRequest("POST", "/register", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Required string `validate:"required"`
		Email    string `validate:"omitempty,email"`
		Min      string `validate:"omitempty,min=5"`
		OneOf    string `validate:"omitempty,oneof=asc desc"`
	}

	v := validator.New()

	tests := []struct {
		name     string
		obj      input
		field    string
		expected string
	}{
		{"required", input{}, "Required", "This field is required"},
		{"email", input{Required: "x", Email: "invalid"}, "Email", "Invalid email format"},
		{"min", input{Required: "x", Min: "ab"}, "Min", "Must be at least 5 characters"},
		{"oneof", input{Required: "x", OneOf: "sideways"}, "OneOf", "Must be one of: asc desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.obj)
			require.Error(t, err)

			validationErrs := err.(validator.ValidationErrors)
			for _, e := range validationErrs {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, getValidationMessage(e))
					return
				}
			}
			t.Fatalf("no validation error for field %s", tt.field)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("includes request ID from context", func(t *testing.T) {
		type input struct {
			Name string `json:"name" binding:"required"`
		}

		router := gin.New()
		router.POST("/test", func(c *gin.Context) {
			c.Set("request_id", "req-42")
			var in input
			if err := c.ShouldBindJSON(&in); err != nil {
				HandleValidationError(c, err)
				return
			}
		})

		body := strings.NewReader(`{}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeValidation)
		assert.Contains(t, w.Body.String(), "req-42")
	})
}
