package api

import (
	"testing"

	"canopy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSearchData 造出四种实体各自带 "ferret" 的样本
func seedSearchData(t *testing.T, ctx *Context) models.User {
	t.Helper()

	author, _ := newUser(t, ctx, "ferretfan", false)
	bystander, _ := newUser(t, ctx, "bystander", false)

	community := models.Community{Name: "ferret-club", Title: "Ferret Club", CategoryID: 1, CreatorID: author.ID}
	require.NoError(t, ctx.DB.Create(&community).Error)
	other := models.Community{Name: "misc", Title: "Misc", CategoryID: 1, CreatorID: bystander.ID}
	require.NoError(t, ctx.DB.Create(&other).Error)

	posts := []models.Post{
		{Title: "Ferret care", Body: "daily routine", URL: "https://ferrets.example.com",
			CommunityID: community.ID, AuthorID: author.ID, Score: 2},
		{Title: "Weather talk", Body: "no ferrets here, just rain", CommunityID: other.ID, AuthorID: bystander.ID},
		{Title: "Totally unrelated", Body: "nothing", CommunityID: other.ID, AuthorID: bystander.ID},
	}
	for i := range posts {
		require.NoError(t, ctx.DB.Create(&posts[i]).Error)
	}

	comment := models.Comment{PostID: posts[2].ID, AuthorID: author.ID, Content: "my ferret agrees"}
	require.NoError(t, ctx.DB.Create(&comment).Error)

	return author
}

func TestSearchSingleKinds(t *testing.T) {
	ctx := testCtx(t, nil)
	seedSearchData(t, ctx)

	resp, err := (&Search{Q: "ferret", Type: "Posts", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Posts", resp.Type)
	assert.Len(t, resp.Posts, 2)
	// 未选中的结果集是空序列，不是缺失字段
	assert.NotNil(t, resp.Comments)
	assert.Empty(t, resp.Comments)
	assert.Empty(t, resp.Communities)
	assert.Empty(t, resp.Users)

	resp, err = (&Search{Q: "ferret", Type: "Comments", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Comments, 1)
	assert.Empty(t, resp.Posts)

	resp, err = (&Search{Q: "ferret", Type: "Communities", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Communities, 1)

	resp, err = (&Search{Q: "ferret", Type: "Users", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "ferretfan", resp.Users[0].Username)
}

func TestSearchAllIsUnionOfKinds(t *testing.T) {
	ctx := testCtx(t, nil)
	seedSearchData(t, ctx)

	all, err := (&Search{Q: "ferret", Type: "All", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)

	for _, kind := range []string{"Posts", "Comments", "Communities", "Users"} {
		single, err := (&Search{Q: "ferret", Type: kind, Sort: "New"}).Perform(ctx)
		require.NoError(t, err)
		switch kind {
		case "Posts":
			assert.Equal(t, single.Posts, all.Posts)
		case "Comments":
			assert.Equal(t, single.Comments, all.Comments)
		case "Communities":
			assert.Equal(t, single.Communities, all.Communities)
		case "Users":
			assert.Equal(t, single.Users, all.Users)
		}
	}
}

func TestSearchURL(t *testing.T) {
	ctx := testCtx(t, nil)
	seedSearchData(t, ctx)

	resp, err := (&Search{Q: "ferrets.example.com", Type: "Url", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "Ferret care", resp.Posts[0].Title)

	// URL 搜索不做全文匹配
	resp, err = (&Search{Q: "ferret care", Type: "Url", Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Posts)
}

func TestSearchCommunityScope(t *testing.T) {
	ctx := testCtx(t, nil)
	seedSearchData(t, ctx)

	var community models.Community
	require.NoError(t, ctx.DB.Where("name = ?", "ferret-club").First(&community).Error)

	resp, err := (&Search{Q: "ferret", Type: "Posts", CommunityID: &community.ID, Sort: "New"}).Perform(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, community.ID, resp.Posts[0].CommunityID)
}

func TestSearchInvalidEnums(t *testing.T) {
	ctx := testCtx(t, nil)

	_, err := (&Search{Q: "x", Type: "Posts", Sort: "Sideways"}).Perform(ctx)
	assert.Equal(t, "invalid_sort_type", apiCode(t, err))

	_, err = (&Search{Q: "x", Type: "Everything", Sort: "New"}).Perform(ctx)
	assert.Equal(t, "invalid_search_type", apiCode(t, err))
}

func TestSearchAnonymousDegrade(t *testing.T) {
	ctx := testCtx(t, nil)
	author := seedSearchData(t, ctx)

	var post models.Post
	require.NoError(t, ctx.DB.Where("title = ?", "Ferret care").First(&post).Error)
	vote := models.Vote{UserID: author.ID, PostID: &post.ID, Value: 1}
	require.NoError(t, ctx.DB.Create(&vote).Error)

	// 无效令牌不报错，按匿名处理
	resp, err := (&Search{Q: "ferret care", Type: "Posts", Sort: "New", Auth: "broken-token"}).Perform(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	assert.Nil(t, resp.Posts[0].MyVote)

	// 有效令牌带出个性化字段
	token, err := ctx.Verifier.Sign(author.ID)
	require.NoError(t, err)
	resp, err = (&Search{Q: "ferret care", Type: "Posts", Sort: "New", Auth: token}).Perform(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	require.NotNil(t, resp.Posts[0].MyVote)
	assert.Equal(t, 1, *resp.Posts[0].MyVote)
}

func TestSearchBadPage(t *testing.T) {
	ctx := testCtx(t, nil)

	_, err := (&Search{Q: "x", Type: "Posts", Sort: "New", Page: intPtr(0)}).Perform(ctx)
	assert.Equal(t, "invalid_page", apiCode(t, err))
}
