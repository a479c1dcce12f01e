package cfg

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"tubesonic/internal/bridge"
	"tubesonic/internal/command/builder"
	"tubesonic/internal/domain/consts"
	"tubesonic/internal/domain/keys"
	"tubesonic/internal/models"
	"tubesonic/internal/validation"

	"github.com/spf13/cobra"
)

// greetCmd prints a greeting.
func greetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Greet someone",
		Long:  "Greet prints a greeting for NAME. The front-end uses it to check the backend responds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), bridge.New().Greet(args[0]))
			return err
		},
	}
}

// downloadCmd downloads a video or its audio and prints the JSON result.
func downloadCmd() *cobra.Command {
	var format, quality string

	dlCmd := &cobra.Command{
		Use:   "download URL",
		Short: "Download a video or its audio",
		Long: "Download runs yt-dlp for URL (playlists are not expanded) and prints the result as JSON.\n" +
			"On failure the error is printed and the exit status is non-zero.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := newBridge()
			if err != nil {
				return err
			}

			res, err := b.DownloadVideo(cmd.Context(), args[0], format, quality)
			if err != nil {
				return err
			}
			return writeJSON(cmd, res)
		},
	}

	dlCmd.Flags().StringVarP(&format, keys.Format, "f", consts.FormatVideo, "Download format (video or audio)")
	dlCmd.Flags().StringVarP(&quality, keys.Quality, "q", consts.QualityHighest, "Video quality (highest, 1080p, 720p, 480p, 360p), ignored for audio")

	return dlCmd
}

// formatsCmd lists accepted formats and qualities with the yt-dlp arguments each produces.
func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List download formats and qualities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FORMAT\tQUALITY\tYT-DLP ARGUMENTS")

			for _, f := range consts.Formats {
				qualities := consts.Qualities[:]
				if f == consts.FormatAudio {
					qualities = []string{"(any)"}
				}

				for _, q := range qualities {
					vb := builder.NewVideoDLCommandBuilder(&models.DownloadRequest{
						URL:     "URL",
						Format:  f,
						Quality: q,
					})
					a, err := vb.VideoFetchArgs()
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", f, q, strings.Join(a, " "))
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "\nCookie browsers: %s\n", strings.Join(validation.SupportedBrowsers(), ", "))
			return err
		},
	}
}

// writeJSON writes v to the command's output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
