// Package cmd implements the checkpatch CLI.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/eykd/checkpatch/internal/changes"
	"github.com/eykd/checkpatch/internal/check"
	"github.com/eykd/checkpatch/internal/config"
	"github.com/eykd/checkpatch/internal/fileproc"
	"github.com/eykd/checkpatch/internal/gitdiff"
	"github.com/eykd/checkpatch/internal/logger"
)

// CheckIO handles I/O for the root command.
type CheckIO interface {
	fileproc.Store
	changes.Lister
	// OpenPatch opens a patch file. Stdin ("-") is handled by the command.
	OpenPatch(name string) (io.ReadCloser, error)
	Getwd() (string, error)
}

// ExitError carries a non-zero process exit status without a message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewRootCmd creates the checkpatch command backed by the local file system
// and the git executable.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithIO(newDefaultCheckIO())
}

// NewRootCmdWithIO creates the checkpatch command using io for all file,
// patch and git access.
func NewRootCmdWithIO(io CheckIO) *cobra.Command {
	root := &cobra.Command{
		Use:   "checkpatch [flags] [file...]",
		Short: "Check files for trailing whitespace and missing final newlines",
		Long: `checkpatch checks the named files, and with --diff the files git reports as
changed, for trailing whitespace and a missing newline at end of file.
With --fix the problems are corrected in place. The exit status is non-zero
when any problem was found, fixed or not.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCheck(cmd, io, args)
		},
	}

	root.Flags().Bool("fix", false, "correct problems in place")
	root.Flags().String("diff", "", "also check files changed according to git diff, optionally against `range`")
	root.Flags().BoolP("verbose", "v", false, "print each file name before checking it")
	root.Flags().StringArray("patch", nil, "also check files touched by a unified diff (\"-\" reads stdin)")
	root.Flags().String("config", "", "configuration file (default: "+config.DefaultFile+" if present)")
	root.Flags().Bool("debug", false, "write debug logs to stderr")

	return root
}

func runCheck(cmd *cobra.Command, cio CheckIO, args []string) error {
	flags := cmd.Flags()
	fix, _ := flags.GetBool("fix")
	verbose, _ := flags.GetBool("verbose")
	debug, _ := flags.GetBool("debug")
	rev, _ := flags.GetString("diff")
	patches, _ := flags.GetStringArray("patch")
	configPath, _ := flags.GetString("config")

	cleanup := logger.Setup(logger.Config{Out: cmd.ErrOrStderr(), Debug: debug})
	defer cleanup()

	dir, err := cio.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(configPath, dir)
	if err != nil {
		return err
	}
	reg, err := check.Default().Without(cfg.Disable...)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	resolver := &changes.Resolver{
		Lister: cio,
		OpenPatch: func(name string) (io.ReadCloser, error) {
			if name == "-" {
				return io.NopCloser(cmd.InOrStdin()), nil
			}
			return cio.OpenPatch(name)
		},
	}
	files, err := resolver.Resolve(cmd.Context(), changes.Request{
		Files:   args,
		Diff:    flags.Changed("diff"),
		Rev:     rev,
		Patches: patches,
		Exclude: cfg.Exclude,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(files) == 0 {
		fmt.Fprintln(out, "no changed files")
		return nil
	}

	proc := &fileproc.Processor{
		Registry: reg,
		Store:    cio,
		Out:      out,
		Fix:      fix,
		Verbose:  verbose,
	}
	statuses := make([]int, 0, len(files))
	for _, f := range files {
		status, err := proc.Process(f)
		if err != nil {
			return err
		}
		statuses = append(statuses, status)
	}

	if code := fileproc.Aggregate(statuses); code != fileproc.StatusClean {
		logger.L().Debug("run.failed", "files", len(files), "status", code)
		return &ExitError{Code: code}
	}
	return nil
}

// fileCheckIO implements CheckIO using OS file I/O and the git executable.
// *Impl methods wrap OS calls and are excluded from coverage requirements.
type fileCheckIO struct {
	fileproc.OSStore
	git *gitdiff.Git
}

func newDefaultCheckIO() *fileCheckIO {
	return &fileCheckIO{git: &gitdiff.Git{}}
}

// ChangedFiles lists changed files with git.
func (f *fileCheckIO) ChangedFiles(ctx context.Context, rev string) ([]string, error) {
	return f.git.ChangedFiles(ctx, rev)
}

// OpenPatch opens the patch file at name.
func (f *fileCheckIO) OpenPatch(name string) (io.ReadCloser, error) {
	return f.OpenPatchImpl(name)
}

// OpenPatchImpl opens the patch file using os.Open.
func (f *fileCheckIO) OpenPatchImpl(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// Getwd returns the working directory.
func (f *fileCheckIO) Getwd() (string, error) {
	return f.GetwdImpl()
}

// GetwdImpl returns the working directory using os.Getwd.
func (f *fileCheckIO) GetwdImpl() (string, error) {
	return os.Getwd()
}
