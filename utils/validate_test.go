package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinaytz/theSkFoodBackend/utils"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, utils.ValidEmail("a@b.co"))
	assert.True(t, utils.ValidEmail("vinay.tz@example.com"))
	assert.False(t, utils.ValidEmail("not-an-email"))
	assert.False(t, utils.ValidEmail("a b@c.de"))
	assert.False(t, utils.ValidEmail("a@b"))
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, utils.StrongPassword("Str0ng@Pass"))
	assert.False(t, utils.StrongPassword("short"))
	assert.False(t, utils.StrongPassword("alllowercase1@"))
	assert.False(t, utils.StrongPassword("ALLUPPERCASE1@"))
	assert.False(t, utils.StrongPassword("NoDigits@@"))
	assert.False(t, utils.StrongPassword("NoSpecial11"))
	assert.False(t, utils.StrongPassword("Has Space1@"))
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 50; i++ {
		otp, err := utils.GenerateOTP()
		assert.NoError(t, err)
		assert.Len(t, otp, 4)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
