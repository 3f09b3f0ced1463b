package handlers

import (
	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	repo "github.com/rogerio-castellano/freshtrack/internal/repo"
	"github.com/rogerio-castellano/freshtrack/internal/scanner"
	"github.com/rogerio-castellano/freshtrack/internal/stats"
)

var (
	productRepo repo.ProductRepository
	scanRepo    repo.ScanEventRepository
	userRepo    repo.UserRepository

	kvStore     kvstore.Store
	notifier    *stats.Notifier
	lookupTable *scanner.LookupTable
	scanFeed    *scanner.Feed
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetScanRepo(r repo.ScanEventRepository) {
	scanRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetKVStore(s kvstore.Store) {
	kvStore = s
}

func SetNotifier(n *stats.Notifier) {
	notifier = n
}

func SetLookupTable(t *scanner.LookupTable) {
	lookupTable = t
}

func SetScanFeed(f *scanner.Feed) {
	scanFeed = f
}
