package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchPattern string

// uploads written in quick succession (Create followed by Write chunks)
// are collapsed into one attempt per file.
const watchSettle = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory and upload new PDFs",
	Long: `Watch a directory and upload every new file matching the pattern
(default **/*.pdf) to the backend. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		svc := newService()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Failed to create watcher", err)
		}
		defer watcher.Close()

		if err := watcher.Add(dir); err != nil {
			fatal("Failed to watch directory", err)
		}
		// Watch existing subdirectories too; new ones are added on the fly.
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err == nil && d.IsDir() && path != dir {
				_ = watcher.Add(path)
			}
			return nil
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Printf("Watching %s for %s (ctrl-c to stop)\n", dir, watchPattern)

		var mu sync.Mutex
		lastSeen := make(map[string]time.Time)

		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nStopped")
				return

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				svc.Logger.Error("watcher error", "error", err)

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if event.Has(fsnotify.Create) {
						_ = watcher.Add(event.Name)
					}
					continue
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}

				rel, err := filepath.Rel(dir, event.Name)
				if err != nil {
					continue
				}
				if ok, _ := doublestar.Match(watchPattern, filepath.ToSlash(rel)); !ok {
					continue
				}

				mu.Lock()
				last := lastSeen[event.Name]
				lastSeen[event.Name] = time.Now()
				mu.Unlock()
				if time.Since(last) < watchSettle {
					continue
				}

				path := event.Name
				lifecycle.Go(ctx, func(ctx context.Context) error {
					time.Sleep(watchSettle) // let the writer finish
					f, err := os.Open(path)
					if err != nil {
						svc.Logger.Error("open failed", "file", path, "error", err)
						return nil
					}
					defer f.Close()

					res, err := svc.API.UploadDocument(ctx, filepath.Base(path), f)
					if err != nil {
						svc.Notifier.Error(fmt.Sprintf("upload %s: %v", rel, err))
						return nil
					}
					svc.Notifier.Success(fmt.Sprintf("uploaded %s as %s", rel, res.Document.ID))
					return nil
				}, lifecycle.WithErrorHandler(func(err error) {
					svc.Logger.Error("upload worker panic", "file", path, "error", err)
				}))
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "**/*.pdf", "Glob pattern of files to upload")
	rootCmd.AddCommand(watchCmd)
}
