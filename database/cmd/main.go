package main

import (
	"os"

	"cardcatalog.app/configs"
	"cardcatalog.app/configs/configsdatabase"
	"cardcatalog.app/configs/configslog"
	"cardcatalog.app/database"

	"github.com/spf13/cobra"
)

var (
	migrateFlag bool
	seedFlag    bool
	driverFlag  string
)

// rootCmd veritabanını hazırlar ve örnek katalog verisini yükler
var rootCmd = &cobra.Command{
	Use:   "populatedb [dsn]",
	Short: "Migrate the catalog schema and load the sample cards",
	Long: `Creates the catalog tables and loads the sample data:
3 element types (Fire, Water, Grass), 7 cards and 11 card instances.

The DSN argument overrides DB_DSN from the environment. Records that already
exist are skipped, so the command can be run more than once.`,
	Example: `  populatedb "host=localhost user=postgres dbname=cardcatalog sslmode=disable"
  populatedb --driver sqlite catalog.db`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPopulate,
}

func init() {
	rootCmd.Flags().BoolVar(&migrateFlag, "migrate", true, "run migrations before seeding")
	rootCmd.Flags().BoolVar(&seedFlag, "seed", true, "load the sample catalog data")
	rootCmd.Flags().StringVar(&driverFlag, "driver", "", "database driver (postgres|sqlite), defaults to DB_DRIVER")
}

func runPopulate(cmd *cobra.Command, args []string) error {
	cfg := configs.LoadConfig()
	configslog.InitLogger(cfg.LogLevel, cfg.Env)
	defer configslog.SyncLogger()

	if len(args) == 1 {
		cfg.Database.DSN = args[0]
	}
	if driverFlag != "" {
		cfg.Database.Driver = driverFlag
	}

	db, err := configsdatabase.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer configsdatabase.CloseDB(db)

	configslog.SLog.Info("Running database initialization...")
	if err := database.Initialize(db, migrateFlag, seedFlag); err != nil {
		return err
	}
	configslog.SLog.Info("Database initialization finished.")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
