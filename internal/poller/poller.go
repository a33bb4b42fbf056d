package poller

import (
	"context"
	"log"
	"time"
)

// Task dijalankan tiap tick. Error dianggap transient: dicatat lalu
// dicoba lagi di tick berikutnya, tanpa backoff.
type Task func() error

// Poller jalanin task secara periodik sampai context-nya dibatalkan.
// Ini versi server dari setInterval + clearInterval di dashboard:
// Stop() harus deterministik, tidak boleh ada timer yatim.
type Poller struct {
	interval time.Duration
	task     Task
	cancel   context.CancelFunc
	done     chan struct{}
}

func New(interval time.Duration, task Task) *Poller {
	return &Poller{interval: interval, task: task}
}

// Start jalanin task sekali langsung (sama seperti frontend fetch dulu
// sebelum pasang interval), lalu tiap interval sampai ctx selesai.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	p.tick()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

func (p *Poller) tick() {
	if err := p.task(); err != nil {
		log.Printf("poll gagal: %v (retry di tick berikutnya)", err)
	}
}

// Stop batalin loop dan tunggu goroutine-nya benar-benar berhenti
func (p *Poller) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
}
