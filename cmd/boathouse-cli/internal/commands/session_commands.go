package commands

import (
	"fmt"

	"github.com/lmrc/boathouse/internal/domain/sessions"
	"github.com/lmrc/boathouse/internal/pkg/logger"
	"github.com/lmrc/boathouse/internal/pkg/validation"

	"github.com/spf13/cobra"
)

// SessionCommandHandler encapsulates logic for checking and previewing
// session definitions via CLI.
type SessionCommandHandler struct {
	logger logger.Logger
}

// NewSessionCommandHandler initializes and returns a SessionCommandHandler
// instance with a configured logger.
func NewSessionCommandHandler() (*SessionCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SessionCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CheckSessionCmd validates a session definition given entirely by flags and
// reports every violation.
func (commandHandler *SessionCommandHandler) CheckSessionCmd(cmd *cobra.Command, _ []string) {
	session, err := sessionFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := session.Validate(); err != nil {
		if errs, ok := validation.AsErrors(err); ok {
			for _, v := range errs {
				commandHandler.logger.Error("Violation: ", v.String())
			}
		} else {
			commandHandler.logger.Error(err)
		}
		return
	}

	commandHandler.logger.Info("Session is valid: ", session.Format())
}

// FormatSessionCmd renders the display string for a session window.
func (commandHandler *SessionCommandHandler) FormatSessionCmd(cmd *cobra.Command, _ []string) {
	session, err := sessionFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(session.Format())
}

func sessionFromFlags(cmd *cobra.Command) (*sessions.Session, error) {
	id, err := cmd.Flags().GetString("id")
	if err != nil {
		return nil, fmt.Errorf("invalid id flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return nil, fmt.Errorf("invalid name flag: %w", err)
	}
	start, err := cmd.Flags().GetString("start")
	if err != nil {
		return nil, fmt.Errorf("invalid start flag: %w", err)
	}
	end, err := cmd.Flags().GetString("end")
	if err != nil {
		return nil, fmt.Errorf("invalid end flag: %w", err)
	}
	days, err := cmd.Flags().GetIntSlice("days")
	if err != nil {
		return nil, fmt.Errorf("invalid days flag: %w", err)
	}
	color, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("invalid color flag: %w", err)
	}
	priority, err := cmd.Flags().GetInt("priority")
	if err != nil {
		return nil, fmt.Errorf("invalid priority flag: %w", err)
	}

	return &sessions.Session{
		ID:         id,
		Name:       name,
		StartTime:  start,
		EndTime:    end,
		DaysOfWeek: days,
		Color:      color,
		Priority:   priority,
	}, nil
}

// InitSessionCommands registers session-related commands
func InitSessionCommands(rootCmd *cobra.Command) error {
	handler, err := NewSessionCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create session command handler %w", err)
	}

	var checkSessionCmd = &cobra.Command{
		Use:   "check-session",
		Short: "Validate a session definition",
		Run:   handler.CheckSessionCmd,
	}
	addSessionFlags(checkSessionCmd)
	rootCmd.AddCommand(checkSessionCmd)

	var formatSessionCmd = &cobra.Command{
		Use:   "format-session",
		Short: "Render the display string for a session",
		Run:   handler.FormatSessionCmd,
	}
	addSessionFlags(formatSessionCmd)
	rootCmd.AddCommand(formatSessionCmd)

	return nil
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("id", "", "", "Session identifier")
	cmd.Flags().StringP("name", "", "", "Session display name")
	cmd.Flags().StringP("start", "", "", "Start time (HH:MM)")
	cmd.Flags().StringP("end", "", "", "End time (HH:MM)")
	cmd.Flags().IntSliceP("days", "", sessions.WeekdaysMonToFri, "Weekday codes (0=Sunday..6=Saturday)")
	cmd.Flags().StringP("color", "", "#1E5AA8", "Display color (#RRGGBB)")
	cmd.Flags().IntP("priority", "", 1, "Display priority")
}
