package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VanderIG123/stylists-api/internal/bootstrap"
	"github.com/VanderIG123/stylists-api/internal/clock"
	"github.com/VanderIG123/stylists-api/internal/config"
	domain "github.com/VanderIG123/stylists-api/internal/domain/appointment"
	"github.com/VanderIG123/stylists-api/internal/identity"
	infraRepo "github.com/VanderIG123/stylists-api/internal/infra/repository"
	"github.com/VanderIG123/stylists-api/internal/logging"
	"github.com/VanderIG123/stylists-api/internal/metrics"
	"github.com/VanderIG123/stylists-api/internal/store"
	ucAppointment "github.com/VanderIG123/stylists-api/internal/usecase/appointment"
)

// env is what every subcommand opens before doing its work.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	close func() error
}

func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	st, closeFn, err := bootstrap.OpenStore(cmd.Context(), cfg, log, nil)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, store: st, close: closeFn}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stylistsctl",
		Short:         "Operator tasks for the stylists booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSeedCmd(), newAppointmentsCmd(), newMigrateCredentialsCmd())
	return root
}

// =============================================================================
// SEED
// =============================================================================

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in stylists when none are stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			now := clock.New(e.cfg.Timezone).Now()
			added := 0
			err = e.store.Write(cmd.Context(), func(tx *store.Tx) error {
				if len(tx.Stylists()) == 0 {
					for _, st := range store.DefaultStylists(now) {
						tx.InsertStylist(&st)
						added++
					}
				}
				// Flush even when nothing was added so the seed lands on disk.
				tx.Touch(store.Stylists)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "stylists seeded: %d added\n", added)
			return nil
		},
	}
}

// =============================================================================
// APPOINTMENTS
// =============================================================================

func newAppointmentsCmd() *cobra.Command {
	var (
		stylistID, userID int64
		status            string
	)

	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Print appointments as JSON, latest slot first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status != "" && !domain.Status(status).Valid() {
				return fmt.Errorf("unknown status %q", status)
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			var f domain.Filter
			if cmd.Flags().Changed("stylist") {
				f.StylistID = &stylistID
			}
			if cmd.Flags().Changed("user") {
				f.UserID = &userID
			}

			aps, err := ucAppointment.NewListAppointments(infraRepo.NewAppointmentStoreRepository(e.store)).
				Execute(cmd.Context(), f)
			if err != nil {
				return err
			}
			if status != "" {
				kept := aps[:0]
				for _, ap := range aps {
					if ap.Status == status {
						kept = append(kept, ap)
					}
				}
				aps = kept
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(aps)
		},
	}

	cmd.Flags().Int64Var(&stylistID, "stylist", 0, "only appointments of this stylist id")
	cmd.Flags().Int64Var(&userID, "user", 0, "only appointments of this user id")
	cmd.Flags().StringVar(&status, "status", "", "only appointments in this status (pending, confirmed, cancelled)")
	return cmd
}

// =============================================================================
// MIGRATE CREDENTIALS
// =============================================================================

func newMigrateCredentialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-credentials",
		Short: "Re-hash every legacy plaintext password now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			svc := identity.NewService(
				infraRepo.NewCredentialStoreRepository(e.store),
				identity.NewBcryptHasher(e.cfg.BcryptCost),
				metrics.New(),
				e.log,
			)
			n, err := svc.MigrateAll(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "credentials migrated: %d\n", n)
			return nil
		},
	}
}
