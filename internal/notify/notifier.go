package notify

// Notifier adalah kontrak trigger notifikasi pasien. Engine cuma peduli
// "kirim sekali waktu confirm sukses"; cara kirimnya (FCM/SMS) urusan adapter.
type Notifier interface {
	Send(contact, title, body string) error
}

// NopNotifier buat mode development tanpa kredensial Firebase
type NopNotifier struct{}

func (NopNotifier) Send(contact, title, body string) error { return nil }
