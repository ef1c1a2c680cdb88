package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go-hrgen/internal/generator"
	"go-hrgen/internal/refdata"
	"go-hrgen/internal/shared/connection"
	"go-hrgen/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a dataset and load it into Postgres",
	Long:  "Generates a dataset like the generate command, then creates the output tables and bulk inserts every row into the database configured via DB_* environment variables.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&genEmployees, "employees", "n", 100, "Number of employees to generate")
	seedCmd.Flags().StringVar(&genStart, "start", "", "Simulation window start, YYYY-MM-DD (required)")
	seedCmd.Flags().StringVar(&genEnd, "end", "", "Simulation window end, YYYY-MM-DD (required)")
	seedCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed; omit for a fresh run")
	seedCmd.Flags().IntVar(&genWorkers, "workers", 0, "Worker pool size; 0 uses all CPUs")
	seedCmd.Flags().BoolVar(&genNoPerf, "no-performance", false, "Skip the performance review table")
	seedCmd.Flags().BoolVar(&genNoComp, "no-compensation", false, "Skip the compensation table")

	_ = seedCmd.MarkFlagRequired("start")
	_ = seedCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	req, err := buildRequest(cmd)
	if err != nil {
		return err
	}

	bundle, err := refdata.Load()
	if err != nil {
		return err
	}

	var opts []generator.Option
	if genWorkers > 0 {
		opts = append(opts, generator.WithWorkers(genWorkers))
	}
	svc := generator.NewService(bundle, zap.L(), opts...)

	ds, err := svc.Generate(cmd.Context(), req)
	if err != nil {
		return err
	}

	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	zap.L().Info("database connection established")

	st := store.New(db, zap.L())
	if err := st.Migrate(); err != nil {
		return err
	}
	if err := st.Save(cmd.Context(), ds); err != nil {
		return err
	}

	zap.L().Info("dataset loaded",
		zap.Int("employees", len(ds.Employees)),
		zap.String("database", os.Getenv("DB_NAME")),
	)
	return nil
}
