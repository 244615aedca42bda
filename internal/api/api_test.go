package api

import (
	"fmt"
	"testing"

	"canopy/internal/auth"
	"canopy/internal/config"
	"canopy/internal/db"
	"canopy/internal/models"
	"canopy/internal/slur"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testCtx(t *testing.T, setup *config.Setup) *Context {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		BannedTerms: []string{"badword", "worseword"},
		Setup:       setup,
	}
	return &Context{
		DB:       conn,
		Config:   cfg,
		Verifier: auth.NewVerifier(cfg.JWTSecret),
		Slurs:    slur.NewFilter(cfg.BannedTerms),
	}
}

// newUser 造一个用户并返回其登录令牌
func newUser(t *testing.T, ctx *Context, username string, admin bool) (models.User, string) {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Admin:        admin,
	}
	require.NoError(t, ctx.DB.Create(&user).Error)

	token, err := ctx.Verifier.Sign(user.ID)
	require.NoError(t, err)
	return user, token
}

func intPtr(i int) *int    { return &i }
func uintPtr(u uint) *uint { return &u }

func apiCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*Error)
	require.True(t, ok, "expected *api.Error, got %T: %v", err, err)
	return apiErr.Code
}

func TestCreatorFirst(t *testing.T) {
	admins := []models.UserView{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	ordered := creatorFirst(admins, 3)
	require.Len(t, ordered, 4)
	assert.Equal(t, uint(3), ordered[0].ID)
	// 其余保持原有相对顺序
	assert.Equal(t, uint(1), ordered[1].ID)
	assert.Equal(t, uint(2), ordered[2].ID)
	assert.Equal(t, uint(4), ordered[3].ID)

	// 创建者不在列表里时原样返回
	ordered = creatorFirst(admins[:2], 99)
	assert.Equal(t, uint(1), ordered[0].ID)
}
