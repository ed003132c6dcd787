package app

import (
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/stixsettings/stixsettings/internal/entitysetting/validation"
)

var (
	// ErrInvalidPayload is returned by validate when the payload has violations.
	ErrInvalidPayload = errors.New("payload is invalid")

	// ErrValidateTarget is returned by validate unless exactly one of --scale or --attributes is set.
	ErrValidateTarget = errors.New("exactly one of --scale or --attributes is required")
)

func newValidateCmd() *cobra.Command {
	var scaleFile, attributesFile string

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a scale or attributes configuration file, - reads stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (scaleFile == "") == (attributesFile == "") {
				return ErrValidateTarget
			}

			validate, file := validation.ValidateScaleConfig, scaleFile
			if attributesFile != "" {
				validate, file = validation.ValidateAttributesConfiguration, attributesFile
			}

			raw, err := readPayload(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			result := validate(raw)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err = enc.Encode(result); err != nil {
				return err //nolint:wrapcheck
			}

			if !result.Valid {
				return ErrInvalidPayload
			}

			return nil
		},
	}

	validateCmd.Flags().StringVar(&scaleFile, "scale", "", "scale configuration file")
	validateCmd.Flags().StringVar(&attributesFile, "attributes", "", "attributes configuration file")

	return validateCmd
}

func readPayload(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin) //nolint:wrapcheck
	}

	return os.ReadFile(file) //nolint:wrapcheck,gosec
}
