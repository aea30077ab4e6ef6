package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestModerateBlogRequestBinding(t *testing.T) {
	assert.Error(t, binding.Validator.ValidateStruct(ModerateBlogRequest{Status: "rejected"}))
	assert.NoError(t, binding.Validator.ValidateStruct(ModerateBlogRequest{Status: "rejected", RejectionReason: "off topic"}))
	assert.NoError(t, binding.Validator.ValidateStruct(ModerateBlogRequest{Status: "approved"}))
}
