package facility

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=facility_repo.go -destination=mock/facility_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateBuilding(ctx context.Context, b *Building) error
	FindAllBuildings(ctx context.Context) ([]Building, error)
	BuildingExists(ctx context.Context, name string) (bool, error)
	CreateRoom(ctx context.Context, r *Room) error
	FindAllRooms(ctx context.Context) ([]Room, error)
	RoomExists(ctx context.Context, id int64) (bool, error)
	UpsertEmployeeRoom(ctx context.Context, employeeNo, roomID int64) error
	UpsertDepartmentRoom(ctx context.Context, departmentName string, roomID int64) error
	EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error)
	DepartmentExists(ctx context.Context, name string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateBuilding(ctx context.Context, b *Building) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAllBuildings(ctx context.Context) ([]Building, error) {
	var buildings []Building
	err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&buildings).Error
	return buildings, err
}

func (r *repository) BuildingExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Building{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateRoom(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *repository) FindAllRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	err := r.db.WithContext(ctx).
		Order("building_name asc, number asc").
		Find(&rooms).Error
	return rooms, err
}

func (r *repository) RoomExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Room{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// UpsertEmployeeRoom moves the employee to the given room, replacing any
// previous assignment in place.
func (r *repository) UpsertEmployeeRoom(ctx context.Context, employeeNo, roomID int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO employee_rooms (employee_no, room_id)
		VALUES (?, ?)
		ON CONFLICT (employee_no)
		DO UPDATE SET room_id = EXCLUDED.room_id
	`, employeeNo, roomID).Error
}

func (r *repository) UpsertDepartmentRoom(ctx context.Context, departmentName string, roomID int64) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO department_rooms (department_name, room_id)
		VALUES (?, ?)
		ON CONFLICT (department_name)
		DO UPDATE SET room_id = EXCLUDED.room_id
	`, departmentName, roomID).Error
}

func (r *repository) EmployeeIsActive(ctx context.Context, employeeNo int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_no = ?", employeeNo).
		Where("is_active").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DepartmentExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
