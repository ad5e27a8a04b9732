package device

//go:generate mockgen -destination=../mock/device/mock_device.go -package=mock_device . Repo

// Repo interface representing access to stored scan results. Save has
// upsert semantics keyed by device id.
type Repo interface {
	Save(d Device) error
	Get(id int) (Device, error)
	GetAll() ([]Device, error)
	Delete(id int) error
}
