package account

import (
	"strings"
	"time"

	"github.com/VanderIG123/stylists-api/internal/models"
)

// StylistPatch is a partial profile update. Nil fields keep the stored
// value; non-nil fields overwrite it, empty values included.
type StylistPatch struct {
	Name           *string                  `json:"name"`
	Phone          *string                  `json:"phone"`
	Address        *string                  `json:"address"`
	Specialties    *[]string                `json:"specialties"`
	Experience     *int                     `json:"experience"`
	Bio            *string                  `json:"bio"`
	HourlyRate     *float64                 `json:"hourlyRate"`
	Availability   *string                  `json:"availability"`
	Services       *[]models.StylistService `json:"services"`
	Portfolio      *[]string                `json:"portfolio"`
	ProfilePicture *string                  `json:"profilePicture"`
}

func (p StylistPatch) Apply(st *models.Stylist, now time.Time) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrNameRequired
		}
		st.Name = name
	}
	set(&st.Phone, p.Phone)
	set(&st.Address, p.Address)
	setSlice(&st.Specialties, p.Specialties)
	set(&st.Experience, p.Experience)
	set(&st.Bio, p.Bio)
	set(&st.HourlyRate, p.HourlyRate)
	set(&st.Availability, p.Availability)
	setSlice(&st.Services, p.Services)
	setSlice(&st.Portfolio, p.Portfolio)
	set(&st.ProfilePicture, p.ProfilePicture)
	st.UpdatedAt = now
	return nil
}

type UserPatch struct {
	Name           *string   `json:"name"`
	Phone          *string   `json:"phone"`
	Address        *string   `json:"address"`
	Preferences    *[]string `json:"preferences"`
	ProfilePicture *string   `json:"profilePicture"`
}

func (p UserPatch) Apply(u *models.User, now time.Time) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrNameRequired
		}
		u.Name = name
	}
	set(&u.Phone, p.Phone)
	set(&u.Address, p.Address)
	setSlice(&u.Preferences, p.Preferences)
	set(&u.ProfilePicture, p.ProfilePicture)
	u.UpdatedAt = now
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setSlice[T any](dst *[]T, v *[]T) {
	if v == nil {
		return
	}
	if *v == nil {
		*dst = []T{}
		return
	}
	*dst = append([]T{}, (*v)...)
}
