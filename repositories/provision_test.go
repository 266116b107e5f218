package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_Multiple_Provisions_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewProvisionRepository(openDB(t), slog.Default())

	guild := "100000000000000001"
	at := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	records := []ProvisionRecord{
		{ID: uuid.New(), GuildID: guild, RequesterID: "1", ChannelID: "900", ChannelName: "alpha", Status: ProvisionDone, Added: []string{"2"}, At: at},
		{ID: uuid.New(), GuildID: guild, RequesterID: "1", ChannelName: "beta", Status: ProvisionFailed, Error: "configuration missing", At: at.Add(time.Minute)},
		{ID: uuid.New(), GuildID: guild, RequesterID: "3", ChannelID: "901", ChannelName: "gamma", Status: ProvisionDone, Invalid: []string{"ghost"}, At: at.Add(2 * time.Minute)},
	}
	for _, record := range records {
		req.NoError(repository.StoreProvision(record))
	}

	fetched, err := repository.ListProvisions(guild, 0)
	req.NoError(err)
	req.Equal([]ProvisionRecord{records[2], records[1], records[0]}, fetched)
}

func Test_Record_Provisions_Limit_And_Guild_Isolation(t *testing.T) {
	req := require.New(t)
	repository := NewProvisionRepository(openDB(t), slog.Default())

	at := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		req.NoError(repository.StoreProvision(ProvisionRecord{GuildID: "1", ChannelName: "a", Status: ProvisionDone, At: at.Add(time.Duration(i) * time.Second)}))
	}
	req.NoError(repository.StoreProvision(ProvisionRecord{GuildID: "12", ChannelName: "other", Status: ProvisionDone, At: at}))

	fetched, err := repository.ListProvisions("1", 2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.Equal(at.Add(2*time.Second), fetched[0].At)
	// A missing id is generated on write
	req.NotEqual(uuid.Nil, fetched[0].ID)

	other, err := repository.ListProvisions("12", 0)
	req.NoError(err)
	req.Len(other, 1)
	req.Equal("other", other[0].ChannelName)
}

func Test_List_Provisions_Empty(t *testing.T) {
	req := require.New(t)
	repository := NewProvisionRepository(openDB(t), slog.Default())

	fetched, err := repository.ListProvisions("1", 10)
	req.NoError(err)
	req.Empty(fetched)
}
