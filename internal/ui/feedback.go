package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
	centerX  float64
}

// NewToastManager creates a toast manager centering messages on centerX.
func NewToastManager(centerX int) *ToastManager {
	return &ToastManager{
		maxStack: 3,
		centerX:  float64(centerX),
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		if alpha < 0 {
			alpha = 0
		}

		var bgColor color.RGBA
		textColor := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := tm.centerX - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)
		drawText(screen, t.Message, face, int(x+padding), int(y+padding), textColor)

		y += boxH + 8
	}
}

// FeedbackManager pairs toasts with sound effects.
type FeedbackManager struct {
	toasts *ToastManager
	audio  *AudioManager
}

// NewFeedbackManager creates a feedback manager for a board of boardPixels width.
func NewFeedbackManager(boardPixels int, sound bool) *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(boardPixels / 2),
		audio:  NewAudioManager(sound),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
}

// Draw renders the toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// OnMoveMade plays the move or capture sound.
func (fm *FeedbackManager) OnMoveMade(isCapture bool) {
	if isCapture {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}

// OnCheck handles a check event.
func (fm *FeedbackManager) OnCheck() {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.audio.Play(SoundCheck)
}

// OnGameEnd shows the final result.
func (fm *FeedbackManager) OnGameEnd(message string, duration time.Duration) {
	fm.toasts.Show(message, ToastSuccess, duration)
	fm.audio.Play(SoundGameEnd)
}

// ToggleSound switches sound effects on or off and reports the new state.
func (fm *FeedbackManager) ToggleSound() bool {
	on := !fm.audio.IsEnabled()
	fm.audio.SetEnabled(on)
	if on {
		fm.OnInfo("Sound on")
	} else {
		fm.OnInfo("Sound off")
	}
	return on
}

// OnInfo shows a short neutral message.
func (fm *FeedbackManager) OnInfo(message string) {
	fm.toasts.Show(message, ToastInfo, 2*time.Second)
}
