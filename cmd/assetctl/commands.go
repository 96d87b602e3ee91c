package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/internal/app/bootstrap"
	"assetverse/internal/platform/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const commandTimeout = 2 * time.Minute

// packageFile is the on-disk shape of a slot catalog.
type packageFile struct {
	Packages []struct {
		ID            string   `yaml:"id"`
		Name          string   `yaml:"name"`
		EmployeeLimit int      `yaml:"employee_limit"`
		Price         float64  `yaml:"price"`
		Features      []string `yaml:"features"`
	} `yaml:"packages"`
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables, collections and indexes for STORE_DRIVER",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd.Context(), func(ctx context.Context, store *bootstrap.Store) error {
				if err := store.Migrate(ctx); err != nil {
					return fmt.Errorf("migrate %s: %w", store.Driver, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "migrated %s store\n", store.Driver)
				return nil
			})
		},
	}
}

func seedPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-packages",
		Short: "Upsert the slot package catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			packages := entities.DefaultPackages()
			if path != "" {
				loaded, err := loadPackages(path)
				if err != nil {
					return err
				}
				packages = loaded
			}
			return withStore(cmd.Context(), func(ctx context.Context, store *bootstrap.Store) error {
				count, err := store.Repo.UpsertPackages(ctx, packages)
				if err != nil {
					return fmt.Errorf("seed packages: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "upserted %d packages into %s store\n", count, store.Driver)
				return nil
			})
		},
	}
	cmd.Flags().StringP("file", "f", "", "YAML catalog file (defaults to the built-in catalog)")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			data, err := yaml.Marshal(cfg.Masked())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "# Effective configuration (.env + file + environment)")
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func withStore(parent context.Context, run func(ctx context.Context, store *bootstrap.Store) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := bootstrap.NewLogger(cfg).With("service", cfg.ServiceName, "process", "assetctl")
	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()
	return run(ctx, store)
}

func loadPackages(path string) ([]entities.Package, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read package file: %w", err)
	}
	var file packageFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse package file: %w", err)
	}
	if len(file.Packages) == 0 {
		return nil, fmt.Errorf("package file %s lists no packages", path)
	}

	packages := make([]entities.Package, 0, len(file.Packages))
	for _, item := range file.Packages {
		if item.ID == "" || item.EmployeeLimit <= 0 || item.Price < 0 {
			return nil, fmt.Errorf("invalid package %q in %s", item.ID, path)
		}
		packages = append(packages, entities.Package{
			PackageID:     item.ID,
			Name:          item.Name,
			EmployeeLimit: item.EmployeeLimit,
			Price:         item.Price,
			Features:      item.Features,
		})
	}
	return packages, nil
}
