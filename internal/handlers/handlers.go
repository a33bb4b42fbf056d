package handlers

import (
	"dentalclinic-backend/internal/dashboard"
	"dentalclinic-backend/internal/lifecycle"
	"dentalclinic-backend/internal/store"
)

// Dependensi handler diisi sekali dari main lewat Setup.
// Handler tetap fungsi package-level biar gampang dipasang di routes.
var (
	userStore  *store.UserStore
	apptStore  *store.AppointmentStore
	engine     *lifecycle.Engine
	statsCache *dashboard.SnapshotCache
	captcha    CaptchaVerifier
)

func Setup(us *store.UserStore, as *store.AppointmentStore, eng *lifecycle.Engine, cache *dashboard.SnapshotCache, cv CaptchaVerifier) {
	userStore = us
	apptStore = as
	engine = eng
	statsCache = cache
	captcha = cv
}
