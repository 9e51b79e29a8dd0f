package astviewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/polytope/foundation/utils/filex"
)

// watchFile forwards changes of path to send until ctx is done
func watchFile(ctx context.Context, path string, send func(tea.Msg)) error {
	return filex.Watch(ctx, []string{path},
		func(changed string) {
			send(fileChangedMsg{path: changed})
		},
		func(err error) {
			send(watchErrorMsg{err: err})
		})
}
