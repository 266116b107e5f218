package resolver

import (
	"channel-request/contract"
	"channel-request/domain"
	"context"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSearchLimit = 10
	DefaultConcurrency = 8
)

// Resolver turns the tokens typed in a request modal into guild members.
// It never fails: a token that can't be resolved is simply absent.
type Resolver struct {
	directory   contract.IDirectory
	log         *slog.Logger
	searchLimit int
	concurrency int
}

func NewResolver(directory contract.IDirectory, log *slog.Logger, searchLimit, concurrency int) *Resolver {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Resolver{directory: directory, log: log, searchLimit: searchLimit, concurrency: concurrency}
}

// Resolve returns the member a single token points to.
// Mentions and raw ids are looked up directly and never fall back to a search:
// a well-formed id that isn't in the guild is a wrong id, not a name.
func (r *Resolver) Resolve(ctx context.Context, guildID string, token domain.Token) (domain.MemberID, bool) {
	if id, ok := token.MemberID(); ok {
		if _, err := r.directory.Member(ctx, guildID, id); err != nil {
			r.log.Debug("Member lookup failed", "guild", guildID, "token", token.Raw, "kind", token.Kind.String(), "error", err)
			return "", false
		}
		return id, true
	}
	return r.resolveHandle(ctx, guildID, token)
}

// resolveHandle searches the directory, preferring an exact name match over the
// search ranking, then scans the cached members when the search comes back empty.
func (r *Resolver) resolveHandle(ctx context.Context, guildID string, token domain.Token) (domain.MemberID, bool) {
	query := token.SearchQuery()
	if query == "" {
		return "", false
	}

	results, err := r.directory.SearchMembers(ctx, guildID, query, r.searchLimit)
	if err != nil {
		r.log.Debug("Member search failed", "guild", guildID, "query", query, "error", err)
	}
	if len(results) > 0 {
		if exact, ok := lo.Find(results, func(m domain.Member) bool { return m.MatchesName(token.Name()) }); ok {
			return exact.ID, true
		}
		return results[0].ID, true
	}

	cached, ok := lo.Find(r.directory.CachedMembers(guildID), func(m domain.Member) bool {
		return m.MatchesName(token.Name())
	})
	if !ok {
		r.log.Debug("No member matches handle", "guild", guildID, "token", token.Raw)
		return "", false
	}
	return cached.ID, true
}

// ResolveAll resolves every token concurrently and joins the results in typing order.
// Duplicates and the requester are dropped from Added; unresolved tokens are reported once.
func (r *Resolver) ResolveAll(ctx context.Context, guildID string, requesterID domain.MemberID, tokens []domain.Token) domain.Resolution {
	ids := make([]domain.MemberID, len(tokens))
	found := make([]bool, len(tokens))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, token := range tokens {
		g.Go(func() error {
			ids[i], found[i] = r.Resolve(ctx, guildID, token)
			return nil
		})
	}
	_ = g.Wait()

	var resolution domain.Resolution
	for i, token := range tokens {
		switch {
		case !found[i]:
			resolution.Invalid = append(resolution.Invalid, token.Raw)
		case ids[i] != requesterID:
			resolution.Added = append(resolution.Added, ids[i])
		}
	}
	resolution.Added = lo.Uniq(resolution.Added)
	resolution.Invalid = lo.Uniq(resolution.Invalid)
	return resolution
}
