package resolver

import (
	"channel-request/domain"
	"channel-request/errors"
	"channel-request/mocks"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const guild = "100000000000000001"

func TestResolver_Resolve_Mention(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the mentioned member when the directory knows it", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			Member(gomock.Any(), guild, domain.MemberID("111")).
			Return(domain.Member{ID: "111", Username: "bob"}, nil).
			Times(1)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("<@!111>"))
		req.True(ok)
		req.Equal(domain.MemberID("111"), id)
	})

	t.Run("should not fall back to search when the mentioned member is unknown", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			Member(gomock.Any(), guild, domain.MemberID("111")).
			Return(domain.Member{}, errors.ErrMemberNotFound).
			Times(1)
		// Search and cache must NEVER be used
		directory.EXPECT().SearchMembers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		directory.EXPECT().CachedMembers(gomock.Any()).Times(0)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("<@111>"))
		req.False(ok)
		req.Empty(id)
	})
}

func TestResolver_Resolve_NumericID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIDirectory(ctrl)
	resolver := NewResolver(directory, slog.Default(), 0, 0)

	known := domain.MemberID("222222222222222222")
	unknown := domain.MemberID("333333333333333333")
	directory.EXPECT().Member(gomock.Any(), guild, known).Return(domain.Member{ID: known}, nil)
	directory.EXPECT().Member(gomock.Any(), guild, unknown).Return(domain.Member{}, fmt.Errorf("HTTP 404 Not Found"))

	id, ok := resolver.Resolve(context.Background(), guild, domain.NewToken(known.String()))
	req.True(ok)
	req.Equal(known, id)

	_, ok = resolver.Resolve(context.Background(), guild, domain.NewToken(unknown.String()))
	req.False(ok)
}

func TestResolver_Resolve_Handle(t *testing.T) {
	ctx := context.Background()
	alicia := domain.Member{ID: "1", Username: "alicia"}
	alice := domain.Member{ID: "2", Username: "alice_01", GlobalName: "Alice"}
	aliceNick := domain.Member{ID: "3", Username: "zed", Nick: "ALICE"}

	t.Run("should prefer the exact case-insensitive match over the search ranking", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 5, 0)

		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, "alice", 5).
			Return([]domain.Member{alicia, alice}, nil)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("alice"))
		req.True(ok)
		req.Equal(alice.ID, id)
	})

	t.Run("should match the nickname too", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, "Alice", DefaultSearchLimit).
			Return([]domain.Member{alicia, aliceNick}, nil)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("Alice"))
		req.True(ok)
		req.Equal(aliceNick.ID, id)
	})

	t.Run("should take the first result when nothing matches exactly", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, "ali", DefaultSearchLimit).
			Return([]domain.Member{alicia, alice}, nil)
		directory.EXPECT().CachedMembers(gomock.Any()).Times(0)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("ali"))
		req.True(ok)
		req.Equal(alicia.ID, id)
	})

	t.Run("should scan the cached members when the search is empty", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, "Alice Smith", DefaultSearchLimit).
			Return(nil, nil)
		directory.EXPECT().
			CachedMembers(guild).
			Return([]domain.Member{alicia, {ID: "4", Username: "asmith", GlobalName: "alice smith"}})

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("Alice Smith"))
		req.True(ok)
		req.Equal(domain.MemberID("4"), id)
	})

	t.Run("should scan the cached members when the search fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, "ghost", DefaultSearchLimit).
			Return(nil, fmt.Errorf("rate limited"))
		directory.EXPECT().CachedMembers(guild).Return([]domain.Member{alicia})

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken("ghost"))
		req.False(ok)
		req.Empty(id)
	})

	t.Run("should truncate the search query to 32 characters", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		directory := mocks.NewMockIDirectory(ctrl)
		resolver := NewResolver(directory, slog.Default(), 0, 0)

		long := strings.Repeat("x", 40)
		directory.EXPECT().
			SearchMembers(gomock.Any(), guild, strings.Repeat("x", domain.MaxSearchQueryLength), DefaultSearchLimit).
			Return([]domain.Member{alicia}, nil)

		id, ok := resolver.Resolve(ctx, guild, domain.NewToken(long))
		req.True(ok)
		req.Equal(alicia.ID, id)
	})
}

func TestResolver_ResolveAll(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIDirectory(ctrl)
	resolver := NewResolver(directory, slog.Default(), 0, 2)

	requester := domain.MemberID("999999999999999999")
	directory.EXPECT().
		Member(gomock.Any(), guild, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id domain.MemberID) (domain.Member, error) {
			if id == "404" {
				return domain.Member{}, errors.ErrMemberNotFound
			}
			return domain.Member{ID: id}, nil
		}).
		AnyTimes()
	directory.EXPECT().
		SearchMembers(gomock.Any(), guild, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query string, _ int) ([]domain.Member, error) {
			if query == "carol" {
				return []domain.Member{{ID: "3", Username: "carol"}}, nil
			}
			return nil, nil
		}).
		AnyTimes()
	directory.EXPECT().CachedMembers(guild).Return(nil).AnyTimes()

	tokens := domain.ParseTokens("<@1>, carol, <@404>, <@1>, nobody, " + requester.String() + ", <@3>, nobody")
	resolution := resolver.ResolveAll(context.Background(), guild, requester, tokens)

	// Then duplicates and the requester are dropped, typing order is kept
	req.Equal([]domain.MemberID{"1", "3"}, resolution.Added)
	req.Equal([]string{"<@404>", "nobody"}, resolution.Invalid)
}

func TestResolver_ResolveAll_TypedAtSign(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIDirectory(ctrl)
	resolver := NewResolver(directory, slog.Default(), 0, 0)

	alice := domain.Member{ID: "300000000000000001", Username: "alice"}
	bob := domain.Member{ID: "300000000000000002", Username: "bobby", GlobalName: "Bob Smith"}
	directory.EXPECT().
		Member(gomock.Any(), guild, domain.MemberID("123456789012345678")).
		Return(domain.Member{ID: "123456789012345678"}, nil)
	directory.EXPECT().
		SearchMembers(gomock.Any(), guild, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query string, _ int) ([]domain.Member, error) {
			if query == "alice" {
				return []domain.Member{alice}, nil
			}
			return nil, nil
		}).
		Times(2)
	directory.EXPECT().CachedMembers(guild).Return([]domain.Member{alice, bob}).Times(1)

	// Given the text suggested by the request modal
	tokens := domain.ParseTokens("@alice, 123456789012345678, @Bob Smith")
	resolution := resolver.ResolveAll(context.Background(), guild, "999999999999999999", tokens)

	// Then the @ typed before a name doesn't prevent the match
	req.Equal([]domain.MemberID{"300000000000000001", "123456789012345678", "300000000000000002"}, resolution.Added)
	req.Empty(resolution.Invalid)
}

func TestResolver_ResolveAll_NoTokens(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	resolver := NewResolver(mocks.NewMockIDirectory(ctrl), slog.Default(), 0, 0)

	resolution := resolver.ResolveAll(context.Background(), guild, "1", nil)
	req.Empty(resolution.Added)
	req.Empty(resolution.Invalid)
}
