//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"channel-request/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IDirectory is the guild membership registry of the chat platform.
type IDirectory interface {
	// Member looks a member up by id, over the network if it isn't cached.
	Member(ctx context.Context, guildID string, id domain.MemberID) (domain.Member, error)
	// SearchMembers runs the platform fuzzy search (prefix on username and nickname).
	SearchMembers(ctx context.Context, guildID, query string, limit int) ([]domain.Member, error)
	// CachedMembers is the local snapshot of the guild members, possibly partial.
	CachedMembers(guildID string) []domain.Member
	// Category fetches the grouping container channels are created under.
	Category(ctx context.Context, guildID, categoryID string) (domain.Category, error)
}

type IChannelCreator interface {
	CreateChannel(ctx context.Context, req domain.ProvisionRequest) (domain.Channel, error)
}

type IResolver interface {
	Resolve(ctx context.Context, guildID string, token domain.Token) (domain.MemberID, bool)
	ResolveAll(ctx context.Context, guildID string, requesterID domain.MemberID, tokens []domain.Token) domain.Resolution
}

type IProvisioner interface {
	Provision(ctx context.Context, params domain.ProvisionParams) (domain.Channel, error)
}

type ICensor interface {
	Censor(original string) (string, []string)
}
