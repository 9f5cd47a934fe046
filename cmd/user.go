package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/database"
	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"
	"github.com/Estefano-cmd/impulsoApi/internal/service"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	newUsername string
	newPassword string
	newName     string
	newSurname  string
	newRoleType string
	newRoleID   uint
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

// createUserCmd represents the user create command
var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user with a hashed password",
	Long: `Create a user account directly in the database. The password is
hashed with bcrypt at the configured cost before it is stored.

Role types: distributor, seller, office`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return createUser()
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(createUserCmd)

	createUserCmd.Flags().StringVar(&newUsername, "username", "", "Login name (required)")
	createUserCmd.Flags().StringVar(&newPassword, "password", "", "Initial password (required)")
	createUserCmd.Flags().StringVar(&newName, "name", "", "First name (required)")
	createUserCmd.Flags().StringVar(&newSurname, "surname", "", "Last name (required)")
	createUserCmd.Flags().StringVar(&newRoleType, "role-type", string(models.RoleTypeOffice), "Role type")
	createUserCmd.Flags().UintVar(&newRoleID, "role-id", 0, "Role id (optional)")
	createUserCmd.MarkFlagRequired("username")
	createUserCmd.MarkFlagRequired("password")
	createUserCmd.MarkFlagRequired("name")
	createUserCmd.MarkFlagRequired("surname")
}

func createUser() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	users := service.NewUserService(repository.NewRepository(db), cfg.Auth.BcryptCost, log)

	user := &models.User{
		Username: newUsername,
		State:    true,
		Name:     newName,
		Surname:  newSurname,
		RoleType: models.RoleType(newRoleType),
	}
	if newRoleID > 0 {
		user.RoleID = &newRoleID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := users.CreateUser(ctx, user, newPassword); err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	fmt.Printf("Created user %q with id %d\n", user.Username, user.ID)
	return nil
}
