package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vamsahq/vamsa/internal/iodb"
	"github.com/vamsahq/vamsa/internal/ioschema"
)

func getCreateCmd() *cobra.Command {
	var force bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create the database schema",
		Long: `Create the Vamsa database schema from scratch.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates the people, relationships and import_logs tables

Use --force to drop existing tables without confirmation.

Examples:
  vamsa create
  vamsa create --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(force)
		},
	}

	createCmd.Flags().BoolVarP(&force, "force", "f", false,
		"drop existing tables without confirmation")

	return createCmd
}

func runCreate(force bool) error {
	cfg := getConfig()
	ctx := context.Background()

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	fmt.Printf("Connected to database: %s@%s:%d/%s\n",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return err
	}

	if hasTables {
		if !force && !confirmDrop() {
			fmt.Println("Aborted.")
			return nil
		}
		if err := op.DropAllTables(ctx); err != nil {
			return err
		}
		fmt.Println("Dropped existing tables.")
	}

	mgr := ioschema.NewManager(op)
	if err := mgr.Create(ctx, cfg); err != nil {
		return err
	}

	fmt.Println("Schema created.")
	return nil
}

func confirmDrop() bool {
	fmt.Print("Database is not empty. Drop all existing tables? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
