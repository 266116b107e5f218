//go:generate go run go.uber.org/mock/mockgen -source=channel_request_service.go -destination=../mocks/mock_channel_request_service.go -package=mocks
package services

import (
	"channel-request/contract"
	"channel-request/domain"
	"channel-request/errors"
	"channel-request/repositories"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

type IChannelRequestService interface {
	OpenRequest(guildID, userID string) *domain.Interaction
	Submit(ctx context.Context, request domain.ChannelRequest) domain.Outcome
}

// SettingsProvider is read once per request.
type SettingsProvider func() (domain.ChannelSettings, error)

type ChannelRequestService struct {
	resolver    contract.IResolver
	provisioner contract.IProvisioner
	censor      contract.ICensor
	audit       repositories.IProvisionRepository
	settings    SettingsProvider
	log         *slog.Logger

	mu      sync.Mutex
	pending map[string]*domain.Interaction // opened by the button, keyed by guild and requester
}

// NewChannelRequestService wires the request workflow. audit may be nil when the audit
// log is disabled.
func NewChannelRequestService(
	log *slog.Logger,
	resolver contract.IResolver,
	provisioner contract.IProvisioner,
	censor contract.ICensor,
	audit repositories.IProvisionRepository,
	settings SettingsProvider,
) *ChannelRequestService {
	return &ChannelRequestService{
		resolver:    resolver,
		provisioner: provisioner,
		censor:      censor,
		audit:       audit,
		settings:    settings,
		log:         log,
		pending:     make(map[string]*domain.Interaction),
	}
}

// OpenRequest starts an interaction when the request button is pressed. The next Submit
// of the same requester in the same guild carries it on. Pressing the button again
// replaces an interaction whose modal was never submitted.
func (s *ChannelRequestService) OpenRequest(guildID, userID string) *domain.Interaction {
	interaction := domain.NewInteraction(pendingKey(guildID, userID))
	s.advance(interaction, domain.StateAwaitingModalInput)

	s.mu.Lock()
	s.pending[interaction.ID] = interaction
	s.mu.Unlock()

	s.log.Debug("Channel request opened", "guild", guildID, "requester", userID)
	return interaction
}

// Submit runs a submitted modal to completion and always ends in Done or Failed.
func (s *ChannelRequestService) Submit(ctx context.Context, request domain.ChannelRequest) domain.Outcome {
	interaction := s.takePending(request)
	requesterID := domain.MemberID(request.RequesterID)

	// 1. Shape of the submission
	if err := request.Validate(); err != nil {
		return s.fail(interaction, request, domain.Resolution{}, "", err)
	}

	// 2. Settings are read now so a missing value becomes a reply, not a crash
	settings, err := s.settings()
	if err != nil {
		return s.fail(interaction, request, domain.Resolution{}, "", err)
	}
	if missing := missingSettings(settings); len(missing) > 0 {
		err := fmt.Errorf("%w: %s", errors.ErrConfigMissing, strings.Join(missing, ", "))
		return s.fail(interaction, request, domain.Resolution{}, "", err)
	}

	// 3. Members
	s.advance(interaction, domain.StateResolving)
	tokens := domain.ParseTokens(request.Members)
	resolution := s.resolver.ResolveAll(ctx, request.GuildID, requesterID, tokens)
	s.log.Debug("Members resolved", "guild", request.GuildID, "requester", request.RequesterID,
		"tokens", len(tokens), "added", len(resolution.Added), "invalid", len(resolution.Invalid))

	// 4. Channel
	s.advance(interaction, domain.StateProvisioning)
	name, censored := s.censor.Censor(request.ChannelName())
	if len(censored) > 0 {
		s.log.Info("Forbidden words removed from channel name", "guild", request.GuildID, "requester", request.RequesterID, "count", len(censored))
	}
	channel, err := s.provisioner.Provision(ctx, domain.ProvisionParams{
		GuildID:         request.GuildID,
		Name:            name,
		ParentID:        settings.CategoryID,
		RequesterID:     requesterID,
		ModeratorRoleID: settings.ModeratorRoleID,
		MemberIDs:       resolution.Added,
	})
	if err != nil {
		return s.fail(interaction, request, resolution, name, err)
	}

	s.advance(interaction, domain.StateDone)
	s.record(repositories.ProvisionRecord{
		GuildID:     request.GuildID,
		RequesterID: request.RequesterID,
		ChannelID:   channel.ID,
		ChannelName: name,
		Status:      repositories.ProvisionDone,
		Added:       lo.Map(resolution.Added, func(id domain.MemberID, _ int) string { return id.String() }),
		Invalid:     resolution.Invalid,
	})
	return domain.Outcome{State: interaction.State, Channel: channel, Resolution: resolution}
}

// takePending removes the interaction opened by the button. A modal can outlive the
// process that showed it, its submission then starts from the awaiting state.
func (s *ChannelRequestService) takePending(request domain.ChannelRequest) *domain.Interaction {
	key := pendingKey(request.GuildID, request.RequesterID)
	s.mu.Lock()
	interaction, ok := s.pending[key]
	delete(s.pending, key)
	s.mu.Unlock()

	if !ok {
		s.log.Debug("No opened interaction for submission", "guild", request.GuildID, "requester", request.RequesterID)
		return &domain.Interaction{ID: request.InteractionID, State: domain.StateAwaitingModalInput}
	}
	return interaction
}

func pendingKey(guildID, userID string) string {
	return guildID + ":" + userID
}

func (s *ChannelRequestService) fail(interaction *domain.Interaction, request domain.ChannelRequest, resolution domain.Resolution, name string, cause error) domain.Outcome {
	if err := interaction.Fail(cause); err != nil {
		s.log.Error("Interaction could not fail", "interaction", interaction.ID, "error", err)
	}
	s.log.Warn("Channel request failed", "guild", request.GuildID, "requester", request.RequesterID, "error", cause)
	s.record(repositories.ProvisionRecord{
		GuildID:     request.GuildID,
		RequesterID: request.RequesterID,
		ChannelName: lo.Ternary(name != "", name, request.ChannelName()),
		Status:      repositories.ProvisionFailed,
		Invalid:     resolution.Invalid,
		Error:       cause.Error(),
	})
	return domain.Outcome{State: interaction.State, Resolution: resolution, Err: cause}
}

func (s *ChannelRequestService) advance(interaction *domain.Interaction, to domain.InteractionState) {
	if err := interaction.Advance(to); err != nil {
		s.log.Error("Interaction out of sequence", "interaction", interaction.ID, "error", err)
	}
}

// record writes the audit trail. It is best effort and never changes the reply.
func (s *ChannelRequestService) record(record repositories.ProvisionRecord) {
	if s.audit == nil {
		return
	}
	record.At = time.Now().UTC()
	if err := s.audit.StoreProvision(record); err != nil {
		s.log.Warn("Audit record not stored", "guild", record.GuildID, "error", err)
	}
}

func missingSettings(settings domain.ChannelSettings) []string {
	var missing []string
	if settings.ModeratorRoleID == "" {
		missing = append(missing, "MODERATOR_ROLE_ID")
	}
	if settings.CategoryID == "" {
		missing = append(missing, "PRIVATE_CATEGORY_ID")
	}
	return missing
}
