package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-spine-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Sender delivers messages to a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Surface turns upload surface calls into program messages.
//
// Calls never block: messages are queued and a single goroutine forwards
// them in call order once [Surface.Attach] has been called. This lets
// Update call into the upload cycle without deadlocking the event loop.
type Surface struct {
	mu      sync.Mutex
	queue   []tea.Msg
	pending chan struct{}
}

// NewSurface returns a detached surface. Messages sent before Attach are
// kept and delivered after it.
func NewSurface() *Surface {
	return &Surface{pending: make(chan struct{}, 1)}
}

// Attach starts forwarding queued messages to s until ctx is done.
func (s *Surface) Attach(ctx context.Context, sender Sender) {
	go s.pump(ctx, sender)
}

func (s *Surface) pump(ctx context.Context, sender Sender) {
	for {
		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		for _, msg := range batch {
			if ctx.Err() != nil {
				return
			}
			sender.Send(msg)
		}

		select {
		case <-ctx.Done():
			return
		case <-s.pending:
		}
	}
}

func (s *Surface) send(msg tea.Msg) {
	s.mu.Lock()
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.pending <- struct{}{}:
	default:
	}
}

func (s *Surface) SetDropTargetActive(active bool) { s.send(dropTargetMsg{active: active}) }
func (s *Surface) SetLoadingVisible(visible bool)  { s.send(loadingMsg{visible: visible}) }
func (s *Surface) SetResultsVisible(visible bool)  { s.send(resultsVisibleMsg{visible: visible}) }
func (s *Surface) SetErrorVisible(visible bool)    { s.send(errorVisibleMsg{visible: visible}) }
func (s *Surface) SetErrorText(text string)        { s.send(errorTextMsg{text: text}) }
func (s *Surface) SetImageSource(src string)       { s.send(imageSourceMsg{src: src}) }

func (s *Surface) SetAngleCards(cards []models.AngleCard) {
	s.send(angleCardsMsg{cards: append([]models.AngleCard(nil), cards...)})
}

func (s *Surface) SetSegmentRows(rows []models.SegmentRow) {
	s.send(segmentRowsMsg{rows: append([]models.SegmentRow(nil), rows...)})
}

// ReportHealth queues a health probe result. Its signature matches the
// report callback of the health worker.
func (s *Surface) ReportHealth(status models.HealthStatus, err error) {
	s.send(healthMsg{status: status, err: err})
}
