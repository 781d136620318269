package commands

import (
	"fmt"

	"github.com/lmrc/boathouse/internal/domain/profile"
	"github.com/lmrc/boathouse/internal/infrastructure/profilefile"
	"github.com/lmrc/boathouse/internal/pkg/logger"
	"github.com/lmrc/boathouse/internal/pkg/validation"

	"github.com/spf13/cobra"
)

// ProfileCommandHandler encapsulates logic for handling club profile files via CLI.
type ProfileCommandHandler struct {
	logger logger.Logger
}

// NewProfileCommandHandler initializes and returns a ProfileCommandHandler
// instance with a configured logger.
func NewProfileCommandHandler() (*ProfileCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ProfileCommandHandler{
		logger: loggerInstance,
	}, nil
}

// InitProfileCmd generates a starter profile file from a club id and name.
// The output is a draft: the integration endpoint must be filled in before
// the file passes validation.
func (commandHandler *ProfileCommandHandler) InitProfileCmd(cmd *cobra.Command, _ []string) {
	clubID, err := cmd.Flags().GetString("club-id")
	if err != nil {
		commandHandler.logger.Error("invalid club-id flag ", err)
		return
	}
	clubName, err := cmd.Flags().GetString("club-name")
	if err != nil {
		commandHandler.logger.Error("invalid club-name flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	p := profile.NewDefaultProfile(clubID, clubName)

	// Save refuses a draft; SaveDraft skips the full-validation gate.
	if err := profilefile.SaveDraft(outputFilePath, p); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Draft profile for ", p.Club.ShortName, " saved to ", outputFilePath)
	commandHandler.logger.Info("Set revSport.baseUrl before deploying; the draft fails validation until completed")
}

// ValidateProfileCmd validates a profile file and reports every violation.
func (commandHandler *ProfileCommandHandler) ValidateProfileCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}

	p, err := profilefile.Load(inputFilePath)
	if err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			for _, v := range errs {
				commandHandler.logger.Error("Violation: ", v.String())
			}
			commandHandler.logger.Error("Profile is invalid: ", len(errs), " violation(s)")
			return
		}
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Profile for ", p.Club.Name, " is valid (", len(p.Sessions), " sessions)")
}

// InitProfileCommands registers profile-related commands
func InitProfileCommands(rootCmd *cobra.Command) error {
	handler, err := NewProfileCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create profile command handler %w", err)
	}

	var initProfileCmd = &cobra.Command{
		Use:   "init-profile",
		Short: "Generate a draft club profile file",
		Run:   handler.InitProfileCmd,
	}
	initProfileCmd.Flags().StringP("club-id", "", "", "Club identifier (normalized to lowercase-hyphenated)")
	initProfileCmd.Flags().StringP("club-name", "", "", "Club display name")
	initProfileCmd.Flags().StringP("output-file", "", "profile.yaml", "Path to write the draft profile")
	rootCmd.AddCommand(initProfileCmd)

	var validateProfileCmd = &cobra.Command{
		Use:   "validate-profile",
		Short: "Validate a club profile file",
		Run:   handler.ValidateProfileCmd,
	}
	validateProfileCmd.Flags().StringP("input-file", "", "profile.yaml", "Path to the profile file")
	rootCmd.AddCommand(validateProfileCmd)

	return nil
}
