package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"shorts/internal/api"
	"shorts/internal/httputil"
	"shorts/internal/media"
	"shorts/internal/meta"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var (
	flagUploadName    string
	flagUploadTags    string
	flagNoTitleLookup bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload [link]",
	Short: "Submit a new video link to the backend",
	Long: `Submit a video link to the backend feed. With no arguments an
interactive form asks for the link, name and tags. When no name is given the
page title of the link is used, falling back to "Untitled".`,
	Args: cobra.MaximumNArgs(1),
	RunE: uploadRun,
}

func init() {
	uploadCmd.Flags().StringVarP(&flagUploadName, "name", "n", "", "Display name for the video")
	uploadCmd.Flags().StringVarP(&flagUploadTags, "tags", "t", "", "Comma-separated tags")
	uploadCmd.Flags().BoolVar(&flagNoTitleLookup, "no-title-lookup", false, "Don't scrape the page title for unnamed uploads")
}

func uploadRun(cmd *cobra.Command, args []string) error {
	link := ""
	if len(args) == 1 {
		link = args[0]
	}
	name := flagUploadName
	tags := flagUploadTags

	if link == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Video link").
					Placeholder("https://…").
					Value(&link),
				huh.NewInput().
					Title("Name (optional)").
					Value(&name),
				huh.NewInput().
					Title("Tags (comma separated)").
					Value(&tags),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
	}

	// Validation failure is reported before any network call.
	if strings.TrimSpace(link) == "" {
		return media.ErrEmptyLink
	}

	name = strings.TrimSpace(name)
	if name == "" && !flagNoTitleLookup {
		name = lookupTitle(strings.TrimSpace(link))
	}

	req := media.UploadRequest{
		VideoLink: link,
		Name:      name,
		Tags:      media.ParseTags(tags),
	}
	debugf("uploading: link=%s name=%q tags=%v", req.VideoLink, req.Name, req.Tags)

	client := api.New(cfg.BackendURL())

	var created *media.Short
	err := runWithSpinner("Uploading", func() error {
		var err error
		created, err = client.Upload(req)
		return err
	})
	if err != nil {
		// Backend error payloads surface verbatim through *api.APIError.
		return err
	}

	createdName := req.Name
	if created != nil {
		createdName = created.DisplayName()
	}
	if createdName == "" {
		createdName = media.UntitledName
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("✓ Uploaded %q", createdName)))

	// Refresh the list so the caller sees the new record land.
	shorts, err := client.Shorts()
	if err != nil {
		fmt.Println(warnStyle.Render("Uploaded, but refreshing the feed failed: " + err.Error()))
		return nil
	}
	fmt.Printf("The feed now has %d shorts.\n", len(shorts))
	return nil
}

// lookupTitle fetches the page title for an unnamed upload. Failures are
// debug-logged and fall back to an empty name, which the backend records as
// Untitled.
func lookupTitle(link string) string {
	var title string
	err := runWithSpinner("Looking up title", func() error {
		var err error
		title, err = meta.Title(httputil.NewClient(), link)
		return err
	})
	if err != nil {
		debugf("title lookup failed: %v", err)
		return ""
	}
	debugf("title lookup: %q", title)
	return title
}

// runWithSpinner runs fn behind a terminal spinner.
func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	return err
}
