package main

import (
	"channel-request/repositories"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const defaultLimit = 20

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "audit",
		Short:         "Inspect the private channel audit log",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	var (
		guildID string
		limit   int
		dbPath  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the latest channel requests of a guild",
		Long: `List the latest private channel requests of a guild, newest first.

Examples:
  # The last 20 requests
  audit list --guild 123456789012345678

  # Every request, from another database
  audit list --guild 123456789012345678 --limit 0 --db /var/lib/bot/audit
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if dbPath == "" {
				dbPath = cfg.BadgerFilepath
			}

			db, err := openDB(dbPath)
			if err != nil {
				return fmt.Errorf("error while opening badger: %w", err)
			}
			defer db.Close()

			records, err := repositories.NewProvisionRepository(db, logs.GetLoggerFromString(cfg.LogLevel)).ListProvisions(guildID, limit)
			if err != nil {
				return err
			}
			renderRecords(cmd.OutOrStdout(), records, cfg.Colours)
			return nil
		},
	}

	cmd.Flags().StringVar(&guildID, "guild", "", "Guild id")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "Maximum number of records, 0 for all")
	cmd.Flags().StringVar(&dbPath, "db", "", "Path to badger DB, defaults to BADGER_FILEPATH")
	_ = cmd.MarkFlagRequired("guild")
	return cmd
}

func renderRecords(out io.Writer, records []repositories.ProvisionRecord, colours bool) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"At", "Status", "Requester", "Channel", "Added", "Not found", "Error"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, record := range records {
		channel := record.ChannelName
		if record.ChannelID != "" {
			channel = fmt.Sprintf("%s (%s)", record.ChannelName, record.ChannelID)
		}
		table.Append([]string{
			record.At.Format(time.DateTime),
			statusLabel(record.Status, colours),
			record.RequesterID,
			channel,
			strings.Join(record.Added, ","),
			strings.Join(record.Invalid, ","),
			record.Error,
		})
	}
	table.Render()
}

func statusLabel(status repositories.ProvisionStatus, colours bool) string {
	label := strings.ToUpper(string(status))
	if !colours {
		return label
	}
	if status == repositories.ProvisionDone {
		return color.New(color.FgGreen).Render(label)
	}
	return color.New(color.FgRed).Render(label)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
