package scanner

import (
	"context"
	"errors"
	"log"

	"github.com/rogerio-castellano/freshtrack/internal/repo"
)

// Feed carries decoded barcode strings from the camera/decoder boundary
// into the core. The decoder's only contract is that it eventually
// supplies each successfully decoded barcode once.
type Feed struct {
	ch chan string
}

func NewFeed(buffer int) *Feed {
	return &Feed{ch: make(chan string, buffer)}
}

// Publish hands a decoded barcode to the feed. It never blocks the
// decoder; when the buffer is full the barcode is dropped.
func (f *Feed) Publish(barcode string) bool {
	select {
	case f.ch <- barcode:
		return true
	default:
		return false
	}
}

// Decoded exposes the stream of decoded barcodes.
func (f *Feed) Decoded() <-chan string {
	return f.ch
}

// StartRecorder consumes the feed and appends each decoded barcode to the
// scan log, tagging it with the matching inventory product when one exists.
// It returns when ctx is cancelled.
func StartRecorder(ctx context.Context, feed *Feed, products repo.ProductRepository, scans repo.ScanEventRepository) {
	for {
		select {
		case <-ctx.Done():
			return
		case barcode := <-feed.Decoded():
			productID := ""
			product, err := products.GetByBarcode(barcode)
			if err == nil {
				productID = product.ID
			} else if !errors.Is(err, repo.ErrProductNotFound) {
				log.Printf("could not match scanned barcode %q: %v", barcode, err)
			}
			if err := scans.Log(barcode, productID); err != nil {
				log.Printf("could not log scan event for %q: %v", barcode, err)
			}
		}
	}
}
