package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemberPackage adalah satu instance pembelian paket oleh member.
// Name dan Price adalah snapshot saat pembelian — edit katalog setelahnya
// tidak mengubah riwayat. Row ini tidak pernah di-update.
type MemberPackage struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	PackageID uuid.UUID `db:"package_id"`
	Name      string    `db:"name"`
	Price     float64   `db:"price"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
}

// ActiveAt melaporkan apakah window [StartDate, EndDate] memuat t.
// Kedua ujung inklusif.
func (mp *MemberPackage) ActiveAt(t time.Time) bool {
	return !mp.StartDate.After(t) && !mp.EndDate.Before(t)
}
