package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/sakethpatnayakuni/offline-chess/internal/board"
	"github.com/sakethpatnayakuni/offline-chess/internal/game"
	"github.com/sakethpatnayakuni/offline-chess/internal/rules"
)

var (
	lightSquare    = tcell.NewHexColor(0xf0d9b5)
	darkSquare     = tcell.NewHexColor(0xb58863)
	selectedSquare = tcell.ColorRed
	hintSquare     = tcell.NewHexColor(0x9fbf6f)
)

// labelRow and labelCol hold the file and rank labels around the board.
const (
	labelRow = board.Size
	labelCol = 0
)

// Terminal shows a session in a tview table. Arrow keys move the cursor,
// Enter clicks the square under it.
type Terminal struct {
	app     *tview.Application
	table   *tview.Table
	status  *tview.TextView
	moves   *tview.TextView
	session *game.Session
}

// New builds the terminal UI for session.
func New(session *game.Session) *Terminal {
	t := &Terminal{
		app:     tview.NewApplication(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
		moves:   tview.NewTextView(),
		session: session,
	}

	t.table.SetSelectable(true, true)
	t.table.Select(board.Size-1, 1).
		SetSelectedFunc(func(row, col int) {
			t.click(row, col)
		}).
		SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEscape {
				t.app.Stop()
			}
		})
	t.moves.SetBorder(true).SetTitle(" Moves ")
	t.status.SetDynamicColors(true)

	t.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			t.app.Stop()
			return nil
		case 'u':
			t.session.Undo()
			t.render()
			return nil
		case 'n':
			t.session.Reset()
			t.render()
			return nil
		}
		return event
	})

	t.render()
	return t
}

// Run blocks until the user quits.
func (t *Terminal) Run() error {
	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(t.status, 4, 0, false).
		AddItem(t.moves, 0, 1, false)

	layout := tview.NewFlex().
		AddItem(t.table, 30, 0, true).
		AddItem(side, 0, 1, false)

	return t.app.SetRoot(layout, true).SetFocus(t.table).Run()
}

// cellSquare maps a table cell to a board square; column 0 and the last
// row hold labels.
func cellSquare(row, col int) (board.Square, bool) {
	sq := board.Sq(row, col-1)
	return sq, row != labelRow && col != labelCol && sq.IsValid()
}

func (t *Terminal) click(row, col int) game.ClickResult {
	sq, ok := cellSquare(row, col)
	if !ok {
		return game.ClickIgnored
	}
	res := t.session.Click(sq)
	log.Debug().Str("square", sq.String()).Stringer("result", res).Msg("click")
	t.render()
	return res
}

func (t *Terminal) render() {
	hints := make(map[board.Square]bool)
	for _, sq := range t.session.Hints() {
		hints[sq] = true
	}
	selected, selecting := t.session.Selected()

	for row := 0; row < board.Size; row++ {
		t.table.SetCell(row, labelCol, tview.NewTableCell(fmt.Sprintf(" %d", board.Size-row)).
			SetSelectable(false))

		for col := 0; col < board.Size; col++ {
			sq := board.Sq(row, col)
			bg := darkSquare
			switch {
			case selecting && sq == selected:
				bg = selectedSquare
			case hints[sq]:
				bg = hintSquare
			case sq.IsLight():
				bg = lightSquare
			}
			t.table.SetCell(row, col+1, tview.NewTableCell(" "+symbol(t.session.Board().At(sq))+" ").
				SetAlign(tview.AlignCenter).
				SetTextColor(tcell.ColorBlack).
				SetBackgroundColor(bg))
		}
	}

	t.table.SetCell(labelRow, labelCol, tview.NewTableCell("").SetSelectable(false))
	for col := 0; col < board.Size; col++ {
		t.table.SetCell(labelRow, col+1, tview.NewTableCell(string(rune('a'+col))).
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
	}

	t.status.SetText(t.statusLine())
	t.moves.SetText(t.moveList())
}

func (t *Terminal) statusLine() string {
	side := t.session.SideToMove()
	line := fmt.Sprintf("[yellow]%s[white] to move", side)
	if !rules.HasAnyMove(t.session.Board(), side) {
		line += " [red](no moves)"
	}
	line += "\n" + capturedLine("White", t.session.Captured(board.White)) +
		"\n" + capturedLine("Black", t.session.Captured(board.Black))
	return line + "\n[gray]enter: select/move  u: undo  n: new  q: quit"
}

// capturedLine lists the pieces of one color taken so far.
func capturedLine(name string, pieces []board.Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteString(p.Glyph())
	}
	return name + " lost: " + sb.String()
}

func (t *Terminal) moveList() string {
	var sb strings.Builder
	for i, rec := range t.session.History() {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(rec.Move.String())
		if i%2 == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
