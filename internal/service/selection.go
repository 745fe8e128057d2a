package service

import "github.com/shenikar/guard_dispatch_system/internal/models"

// SelectPrimaryAndBackup выбирает основного (rank 0) и, если требуется и есть из кого,
// резервного (rank 1) охранника. Функция не имеет побочных эффектов.
func SelectPrimaryAndBackup(candidates []models.DispatchCandidate, requireBackup bool) (primary, backup *models.DispatchCandidate) {
	for i := range candidates {
		switch candidates[i].Rank {
		case 0:
			if primary == nil {
				c := candidates[i]
				primary = &c
			}
		case 1:
			if requireBackup && backup == nil {
				c := candidates[i]
				backup = &c
			}
		}
	}
	if primary == nil {
		backup = nil
	}
	return primary, backup
}
