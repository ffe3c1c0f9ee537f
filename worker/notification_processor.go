package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/amberloft/venue-booking/model"
)

// NotificationProcessor consumes booking notifications from Kafka and turns
// them into outbound emails. Sends are logged; the delivery provider hookup
// is the only missing piece.
type NotificationProcessor struct {
	consumer *kafka.Reader

	// Worker pool for managing goroutines
	workerPool chan chan kafka.Message
	workers    []*NotificationWorker

	// Metrics
	processedCount int64
	activeWorkers  int64
}

type NotificationWorker struct {
	id         int
	processor  *NotificationProcessor
	jobChannel chan kafka.Message
	workerPool chan chan kafka.Message
	quit       chan bool
}

func NewNotificationProcessor(consumer *kafka.Reader, maxWorkers int) *NotificationProcessor {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	processor := &NotificationProcessor{
		consumer:   consumer,
		workerPool: make(chan chan kafka.Message, maxWorkers),
		workers:    make([]*NotificationWorker, maxWorkers),
	}

	for i := 0; i < maxWorkers; i++ {
		worker := &NotificationWorker{
			id:         i,
			processor:  processor,
			jobChannel: make(chan kafka.Message),
			workerPool: processor.workerPool,
			quit:       make(chan bool),
		}
		processor.workers[i] = worker
	}

	return processor
}

// Start begins consuming notification requests from Kafka
func (p *NotificationProcessor) Start(ctx context.Context) error {
	log.Printf("Starting notification processor with %d workers...", len(p.workers))

	// Start all workers
	for _, worker := range p.workers {
		worker.start()
	}

	// Start metrics reporting goroutine
	go p.reportMetrics(ctx)

	// Main message processing loop
	for {
		select {
		case <-ctx.Done():
			log.Println("Notification processor shutting down...")
			p.shutdown()
			return ctx.Err()
		default:
			msg, err := p.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			// Dispatch to worker pool (blocks if all workers busy)
			select {
			case jobChannel := <-p.workerPool:
				select {
				case jobChannel <- msg:
					// Successfully dispatched
				case <-ctx.Done():
					return ctx.Err()
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (w *NotificationWorker) start() {
	go func() {
		for {
			// Register this worker in the pool
			w.workerPool <- w.jobChannel

			select {
			case job := <-w.jobChannel:
				atomic.AddInt64(&w.processor.activeWorkers, 1)

				if err := w.processor.processNotification(job); err != nil {
					log.Printf("Worker %d error processing notification: %v", w.id, err)
				}

				atomic.AddInt64(&w.processor.processedCount, 1)
				atomic.AddInt64(&w.processor.activeWorkers, -1)

			case <-w.quit:
				log.Printf("Worker %d shutting down", w.id)
				return
			}
		}
	}()
}

func (w *NotificationWorker) stop() {
	w.quit <- true
}

// shutdown gracefully stops all workers
func (p *NotificationProcessor) shutdown() {
	log.Println("Shutting down notification workers...")

	for _, worker := range p.workers {
		worker.stop()
	}

	// Wait for active workers to finish (with timeout)
	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			log.Println("Shutdown timeout reached, forcing exit")
			return
		case <-ticker.C:
			if atomic.LoadInt64(&p.activeWorkers) == 0 {
				log.Println("All workers finished gracefully")
				return
			}
		}
	}
}

// reportMetrics logs throughput
func (p *NotificationProcessor) reportMetrics(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			processed := atomic.LoadInt64(&p.processedCount)
			active := atomic.LoadInt64(&p.activeWorkers)
			log.Printf("Notification Processor Metrics - Processed: %d, Active Workers: %d",
				processed, active)
		}
	}
}

// Processed returns the number of messages handled so far
func (p *NotificationProcessor) Processed() int64 {
	return atomic.LoadInt64(&p.processedCount)
}

// processNotification handles a single notification message
func (p *NotificationProcessor) processNotification(msg kafka.Message) error {
	var req model.NotificationRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		return fmt.Errorf("failed to unmarshal notification request: %w", err)
	}

	log.Printf("Processing notification: %s for %s", req.Type, req.RecipientEmail)

	var emailTemplate *model.EmailTemplate
	switch req.Type {
	case model.NotificationBookingReceived:
		emailTemplate = req.GenerateBookingReceivedEmail()
	case model.NotificationBookingConfirmed:
		emailTemplate = req.GenerateBookingConfirmedEmail()
	case model.NotificationBookingCancelled:
		emailTemplate = req.GenerateBookingCancelledEmail()
	default:
		log.Printf("Unknown notification type: %s", req.Type)
		return nil
	}

	if err := sendEmail(emailTemplate); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Sent %s email to %s for booking %s",
		req.Type, req.RecipientEmail, req.BookingData.BookingID)

	return nil
}

// sendEmail logs the outbound email in place of a delivery provider
func sendEmail(template *model.EmailTemplate) error {
	log.Printf("EMAIL SENT:")
	log.Printf("   To: %s", template.To)
	log.Printf("   Subject: %s", template.Subject)
	log.Printf("   Body:\n%s", template.Body)
	return nil
}
