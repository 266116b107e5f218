package internal

import (
	"channel-request/domain"
	"channel-request/errors"
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

type Config struct {
	DiscordToken          string        `env:"DISCORD_TOKEN,required=true"`
	Port                  int           `env:"PORT,default=3000"`
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=5s"`
	InteractionTimeout    time.Duration `env:"INTERACTION_TIMEOUT,default=10s"`
	SearchLimit           int           `env:"SEARCH_LIMIT,default=10"`
	ResolveConcurrency    int           `env:"RESOLVE_CONCURRENCY,default=8"`
	ForbiddenChannelWords string        `env:"FORBIDDEN_CHANNEL_WORDS"`
	CensorCharacter       string        `env:"CENSOR_CHARACTER,default=*"`
	AuditEnabled          bool          `env:"AUDIT_ENABLED,default=true"`
	BadgerFilepath        string        `env:"BADGER_FILEPATH,default=./data/audit"`
}

// channelSettings is read again for every request.
type channelSettings struct {
	ModeratorRoleID string `env:"MODERATOR_ROLE_ID"`
	CategoryID      string `env:"PRIVATE_CATEGORY_ID"`
}

// ChannelSettingsFromEnviron reads the moderator role and the target category from the
// environment. Missing values are left empty for the caller to report.
func ChannelSettingsFromEnviron() (domain.ChannelSettings, error) {
	var settings channelSettings
	if _, err := env.UnmarshalFromEnviron(&settings); err != nil {
		return domain.ChannelSettings{}, fmt.Errorf("%w: %v", errors.ErrConfigInvalid, err)
	}
	return domain.ChannelSettings{
		ModeratorRoleID: settings.ModeratorRoleID,
		CategoryID:      settings.CategoryID,
	}, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
