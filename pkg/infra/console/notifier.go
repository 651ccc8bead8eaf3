package console

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/domain/model"
)

type writerNotifier struct {
	w io.Writer
}

// NewNotifier writes buglist text to w, terminated by a single newline
func NewNotifier(w io.Writer) interfaces.Notifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Name() string {
	return "console"
}

func (n *writerNotifier) Notify(ctx context.Context, buglist *model.Buglist) error {
	if _, err := fmt.Fprintln(n.w, buglist.Text); err != nil {
		return goerr.Wrap(err, "failed to write buglist")
	}
	return nil
}
