package usecases

import (
	"strings"

	"github.com/synth-sarmi/synthsurvey-back/internal/domain/entities"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/repositories"
)

// WaitlistUseCase captura e-mails de interessados antes do lançamento.
type WaitlistUseCase struct {
	waitlist repositories.IWaitlistRepository
}

func NewWaitlistUseCase(waitlist repositories.IWaitlistRepository) *WaitlistUseCase {
	return &WaitlistUseCase{
		waitlist: waitlist,
	}
}

func (u *WaitlistUseCase) Join(email string) (*entities.WaitlistEntry, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.NewInvalidInput("Invalid email")
	}

	entry := &entities.WaitlistEntry{Email: email}
	if err := u.waitlist.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
