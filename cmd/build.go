package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/devfolio/devfolio/blog/application"
	"github.com/devfolio/devfolio/blog/persistence"
	"github.com/devfolio/devfolio/sitegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generates the static site into the output directory",
	Long: `The build command ingests every Markdown document from the content
directory, renders each post with syntax-highlighted code widgets, and
writes the finished site to the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := buildRepository()
		if err != nil {
			return err
		}

		gen := sitegen.New(appConfig, repo, application.NewMarkdownRenderer())
		if err := gen.Build(); err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		log.Info().Str("output", appConfig.OutputDir).Int("posts", len(repo.All())).Msg("Site built")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildRepository runs the whole ingestion pass once: sources, normalized
// posts, sorted repository.
func buildRepository() (*persistence.MemoryPostRepository, error) {
	sources, err := application.LoadSources(appConfig.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return persistence.NewPostRepository(application.BuildPosts(sources)), nil
}
