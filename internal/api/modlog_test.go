package api

import (
	"testing"

	"canopy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedModlog 两个社区、两个版主，九张审核表各塞一条记录
func seedModlog(t *testing.T, ctx *Context) (mod models.User, community models.Community) {
	t.Helper()

	mod, _ = newUser(t, ctx, "mod", true)
	otherMod, _ := newUser(t, ctx, "othermod", true)
	target, _ := newUser(t, ctx, "target", false)

	community = models.Community{Name: "watched", Title: "Watched", CategoryID: 1, CreatorID: mod.ID}
	require.NoError(t, ctx.DB.Create(&community).Error)
	elsewhere := models.Community{Name: "elsewhere", Title: "Elsewhere", CategoryID: 1, CreatorID: mod.ID}
	require.NoError(t, ctx.DB.Create(&elsewhere).Error)

	post := models.Post{Title: "Reported post", CommunityID: community.ID, AuthorID: target.ID}
	require.NoError(t, ctx.DB.Create(&post).Error)
	strayPost := models.Post{Title: "Stray post", CommunityID: elsewhere.ID, AuthorID: target.ID}
	require.NoError(t, ctx.DB.Create(&strayPost).Error)
	comment := models.Comment{PostID: post.ID, AuthorID: target.ID, Content: "rude"}
	require.NoError(t, ctx.DB.Create(&comment).Error)

	for _, row := range []any{
		&models.ModRemovePost{ModUserID: mod.ID, PostID: post.ID, Reason: "spam", Removed: true},
		&models.ModRemovePost{ModUserID: otherMod.ID, PostID: strayPost.ID, Removed: true},
		&models.ModLockPost{ModUserID: mod.ID, PostID: post.ID, Locked: true},
		&models.ModStickyPost{ModUserID: mod.ID, PostID: post.ID, Stickied: true},
		&models.ModRemoveComment{ModUserID: mod.ID, CommentID: comment.ID, Reason: "rude", Removed: true},
		&models.ModRemoveCommunity{ModUserID: mod.ID, CommunityID: elsewhere.ID, Reason: "dead", Removed: true},
		&models.ModBanFromCommunity{ModUserID: mod.ID, OtherUserID: target.ID, CommunityID: community.ID, Banned: true},
		&models.ModBan{ModUserID: mod.ID, OtherUserID: target.ID, Reason: "troll", Banned: true},
		&models.ModAddCommunity{ModUserID: mod.ID, OtherUserID: target.ID, CommunityID: community.ID},
		&models.ModAdd{ModUserID: mod.ID, OtherUserID: target.ID},
	} {
		require.NoError(t, ctx.DB.Create(row).Error)
	}

	return mod, community
}

func TestGetModlogSiteWide(t *testing.T) {
	ctx := testCtx(t, nil)
	seedModlog(t, ctx)

	resp, err := (&GetModlog{}).Perform(ctx)
	require.NoError(t, err)

	assert.Len(t, resp.RemovedPosts, 2)
	assert.Len(t, resp.LockedPosts, 1)
	assert.Len(t, resp.StickiedPosts, 1)
	assert.Len(t, resp.RemovedComments, 1)
	assert.Len(t, resp.RemovedCommunities, 1)
	assert.Len(t, resp.BannedFromCommunity, 1)
	assert.Len(t, resp.Banned, 1)
	assert.Len(t, resp.AddedToCommunity, 1)
	assert.Len(t, resp.Added, 1)

	assert.Equal(t, "mod", resp.Banned[0].ModUsername)
	assert.Equal(t, "target", resp.Banned[0].OtherUsername)

	titles := []string{resp.RemovedPosts[0].PostTitle, resp.RemovedPosts[1].PostTitle}
	assert.ElementsMatch(t, []string{"Reported post", "Stray post"}, titles)
	assert.Equal(t, "rude", resp.RemovedComments[0].CommentContent)
}

func TestGetModlogCommunityScoped(t *testing.T) {
	ctx := testCtx(t, nil)
	_, community := seedModlog(t, ctx)

	resp, err := (&GetModlog{CommunityID: &community.ID}).Perform(ctx)
	require.NoError(t, err)

	// 另一个社区的移除动作被过滤掉
	require.Len(t, resp.RemovedPosts, 1)
	assert.Equal(t, "Reported post", resp.RemovedPosts[0].PostTitle)
	assert.Len(t, resp.RemovedComments, 1)
	assert.Len(t, resp.BannedFromCommunity, 1)
	assert.Len(t, resp.AddedToCommunity, 1)

	// 全站三类按社区查询时给空列表，且序列化后不是 null
	assert.NotNil(t, resp.RemovedCommunities)
	assert.Empty(t, resp.RemovedCommunities)
	assert.NotNil(t, resp.Banned)
	assert.Empty(t, resp.Banned)
	assert.NotNil(t, resp.Added)
	assert.Empty(t, resp.Added)
}

func TestGetModlogModFilter(t *testing.T) {
	ctx := testCtx(t, nil)
	mod, _ := seedModlog(t, ctx)

	resp, err := (&GetModlog{ModUserID: &mod.ID}).Perform(ctx)
	require.NoError(t, err)

	// 另一位版主的那条移除记录被过滤
	require.Len(t, resp.RemovedPosts, 1)
	assert.Equal(t, mod.ID, resp.RemovedPosts[0].ModUserID)
	assert.Len(t, resp.Banned, 1)
}

func TestGetModlogBadPage(t *testing.T) {
	ctx := testCtx(t, nil)

	_, err := (&GetModlog{Page: intPtr(-1)}).Perform(ctx)
	assert.Equal(t, "invalid_page", apiCode(t, err))
}
