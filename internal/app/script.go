package app

import (
	"context"
	"io"

	"github.com/dshills/kbdwrap/internal/plugin/lua"
	"github.com/dshills/kbdwrap/internal/render"
)

// RunScript runs a Lua script file against ed. Toggles go through the
// application's dispatcher, so each forms one undo step.
func (app *Application) RunScript(ctx context.Context, ed lua.Editor, path string, out io.Writer) error {
	if app.IsShutdown() {
		return ErrShutdown
	}

	state := lua.NewState(lua.WithOutput(out))
	defer state.Close()

	lua.NewModule(ed, app.dispatcher).Register(state)

	if err := state.DoFile(ctx, path); err != nil {
		return NewOperationError("script", path, err)
	}
	return nil
}

// RenderHTML renders markdown as an HTML page in the active style.
func (app *Application) RenderHTML(md []byte) ([]byte, error) {
	out, err := render.HTML(md, app.Style())
	if err != nil {
		return nil, NewOperationError("render", "html", err)
	}
	return out, nil
}

// Preview draws the <kbd> spans of text as key caps in the active style.
func (app *Application) Preview(text string, color bool) string {
	return render.Terminal(text, app.Style(), color)
}
