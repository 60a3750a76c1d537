// Package seeders loads the reference data and demo records the yard
// needs to be usable on an empty database. Every step is keyed on natural
// identifiers, so running Seed twice creates nothing the second time.
package seeders

import (
	"context"
	"fmt"
	"time"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "ADMINISTRADOR"
	RoleOperator = "OPERARIO"
	RoleClient   = "CLIENTE"

	LevelFull      = "Total"
	LevelOperative = "Operativo"
	LevelBasic     = "Básico"

	slotRows       = 5
	slotColumns    = 10
	slotLevels     = 3
	containerCount = 20
	ticketCount    = 10
)

// Summary counts the rows a Seed run created.
type Summary struct {
	Roles        int
	Levels       int
	Users        int
	Zones        int
	Slots        int
	Ships        int
	Appointments int
	Containers   int
	Tickets      int
}

func (s Summary) Total() int {
	return s.Roles + s.Levels + s.Users + s.Zones + s.Slots + s.Ships + s.Appointments + s.Containers + s.Tickets
}

type account struct {
	name     string
	email    string
	password string
	phone    string
	company  string
	role     string
	level    string
}

var staffAccounts = []account{
	{"Juan Administrador", "admin@enapu.com", "admin123", "999888777", "ENAPU", RoleAdmin, LevelFull},
	{"Carlos López", "operario@enapu.com", "operario123", "999777666", "ENAPU", RoleOperator, LevelOperative},
	{"María García", "cliente@empresa.com", "cliente123", "999666555", "Transportes García SAC", RoleClient, LevelBasic},
}

var defaultClients = []account{
	{"Carlos Rodríguez", "carlos.rodriguez@transportes.com", "cliente123", "987654321", "Transportes Rodríguez S.A.", RoleClient, LevelBasic},
	{"Ana Martínez", "ana.martinez@logistics.com", "cliente123", "987654322", "Logistics Express", RoleClient, LevelBasic},
	{"Roberto Silva", "roberto.silva@maritime.com", "cliente123", "987654323", "Maritime Solutions", RoleClient, LevelBasic},
	{"Patricia Gómez", "patricia.gomez@shipping.com", "cliente123", "987654324", "Global Shipping Inc.", RoleClient, LevelBasic},
	{"Luis Torres", "luis.torres@cargo.com", "cliente123", "987654325", "Cargo Masters", RoleClient, LevelBasic},
	{"Carmen Vega", "carmen.vega@freight.com", "cliente123", "987654326", "International Freight Services", RoleClient, LevelBasic},
}

var (
	zoneSeeds = []models.Zone{
		{Name: "Zona A", Capacity: 100},
		{Name: "Zona B", Capacity: 150},
		{Name: "Zona C", Capacity: 120},
	}
	shipSeeds = []models.Ship{
		{Name: "MSC MAYA", ShippingLine: "MSC"},
		{Name: "MAERSK ESSEX", ShippingLine: "MAERSK"},
		{Name: "EVERGREEN HARMONY", ShippingLine: "EVERGREEN"},
	}
	containerTypes = []string{"20FT", "40FT", "40HC"}
)

type seeder struct {
	tx      *gorm.DB
	hasher  utils.PasswordHasher
	now     time.Time
	summary Summary

	roles  map[string]uint
	levels map[string]uint
}

// Seed creates whatever part of the demo data set is missing, inside one
// transaction.
func Seed(ctx context.Context, db *gorm.DB, hasher utils.PasswordHasher) (Summary, error) {
	s := &seeder{
		hasher: hasher,
		now:    time.Now(),
		roles:  map[string]uint{},
		levels: map[string]uint{},
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s.tx = tx
		steps := []struct {
			name string
			run  func() error
		}{
			{"roles", s.seedRoles},
			{"access levels", s.seedLevels},
			{"users", s.seedUsers},
			{"zones", s.seedZones},
			{"ships, appointments and containers", s.seedLogistics},
			{"tickets", s.seedTickets},
		}
		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("seeding %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	utils.InfoLogger.Infof("seed completed: %+v", s.summary)
	return s.summary, nil
}

// firstOrCreate reports whether dest had to be inserted.
func (s *seeder) firstOrCreate(dest interface{}, where map[string]interface{}) (bool, error) {
	res := s.tx.Where(where).FirstOrCreate(dest)
	return res.RowsAffected > 0, res.Error
}

func (s *seeder) seedRoles() error {
	for _, name := range []string{RoleAdmin, RoleOperator, RoleClient} {
		role := models.Role{Name: name}
		created, err := s.firstOrCreate(&role, map[string]interface{}{"rol": name})
		if err != nil {
			return err
		}
		if created {
			s.summary.Roles++
		}
		s.roles[name] = role.ID
	}
	return nil
}

func (s *seeder) seedLevels() error {
	for _, name := range []string{LevelFull, LevelOperative, LevelBasic} {
		level := models.AccessLevel{Name: name}
		created, err := s.firstOrCreate(&level, map[string]interface{}{"nivel": name})
		if err != nil {
			return err
		}
		if created {
			s.summary.Levels++
		}
		s.levels[name] = level.ID
	}
	return nil
}

func (s *seeder) seedUsers() error {
	all := append(append([]account{}, staffAccounts...), defaultClients...)
	for _, a := range all {
		var count int64
		if err := s.tx.Model(&models.User{}).Where("email = ?", a.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		hashed, err := s.hasher.Hash(a.password)
		if err != nil {
			return err
		}
		phone, company := a.phone, a.company
		user := models.User{
			Name:          a.name,
			Email:         a.email,
			Password:      hashed,
			Phone:         &phone,
			Company:       &company,
			RoleID:        s.roles[a.role],
			AccessLevelID: s.levels[a.level],
			Active:        true,
		}
		if err := s.tx.Create(&user).Error; err != nil {
			return err
		}
		s.summary.Users++
	}
	return nil
}

type slotKey struct{ row, column, level int }

func (s *seeder) seedZones() error {
	for _, seed := range zoneSeeds {
		zone := seed
		created, err := s.firstOrCreate(&zone, map[string]interface{}{"nombre": seed.Name})
		if err != nil {
			return err
		}
		if created {
			s.summary.Zones++
		}

		var existing []models.Slot
		if err := s.tx.Where("id_zona = ?", zone.ID).Find(&existing).Error; err != nil {
			return err
		}
		have := make(map[slotKey]bool, len(existing))
		for _, slot := range existing {
			have[slotKey{slot.Row, slot.Column, slot.Level}] = true
		}

		var missing []models.Slot
		for row := 1; row <= slotRows; row++ {
			for col := 1; col <= slotColumns; col++ {
				for lvl := 1; lvl <= slotLevels; lvl++ {
					if have[slotKey{row, col, lvl}] {
						continue
					}
					missing = append(missing, models.Slot{
						Row:    row,
						Column: col,
						Level:  lvl,
						Status: models.SlotStatusFree,
						ZoneID: zone.ID,
					})
				}
			}
		}
		if len(missing) == 0 {
			continue
		}
		if err := s.tx.CreateInBatches(&missing, 50).Error; err != nil {
			return err
		}
		s.summary.Slots += len(missing)
	}
	return nil
}

func (s *seeder) seedLogistics() error {
	ships := make([]models.Ship, 0, len(shipSeeds))
	for _, seed := range shipSeeds {
		ship := seed
		created, err := s.firstOrCreate(&ship, map[string]interface{}{"nombre": seed.Name, "linea_naviera": seed.ShippingLine})
		if err != nil {
			return err
		}
		if created {
			s.summary.Ships++
		}
		ships = append(ships, ship)
	}

	appointments, err := s.seedAppointments()
	if err != nil {
		return err
	}

	for i := 0; i < containerCount; i++ {
		kind := containerTypes[i%len(containerTypes)]
		dimensions := "40x8x9"
		if kind == "20FT" {
			dimensions = "20x8x8"
		}
		barcode := fmt.Sprintf("CONT-2024-%03d", i+1)
		number := fmt.Sprintf("ABCD%07d", i+1)
		apptID := appointments[i%len(appointments)].ID
		container := models.Container{
			Barcode:       &barcode,
			Number:        &number,
			Dimensions:    dimensions,
			Type:          kind,
			Weight:        15000 + float64(i*500),
			ShipID:        ships[i%len(ships)].ID,
			AppointmentID: &apptID,
		}
		created, err := s.firstOrCreate(&container, map[string]interface{}{"codigo_barras": barcode})
		if err != nil {
			return err
		}
		if created {
			s.summary.Containers++
		}
	}
	return nil
}

// seedAppointments gives every client account one reservation.
func (s *seeder) seedAppointments() ([]models.PickupAppointment, error) {
	var clients []models.User
	err := s.tx.Where("id_rol = ?", s.roles[RoleClient]).Order("id").Find(&clients).Error
	if err != nil {
		return nil, err
	}

	appointments := make([]models.PickupAppointment, 0, len(clients))
	for i, client := range clients {
		clientID := client.ID
		send := models.NewDate(s.now.AddDate(0, 0, i))
		pickup := models.NewDate(s.now.AddDate(0, 0, i+7))
		appt := models.PickupAppointment{
			SendDate:   &send,
			PickupDate: &pickup,
			TripDays:   7,
			Status:     models.AppointmentStatusReserved,
			ClientID:   &clientID,
		}
		created, err := s.firstOrCreate(&appt, map[string]interface{}{"id_cliente": clientID})
		if err != nil {
			return nil, err
		}
		if created {
			s.summary.Appointments++
		}
		appointments = append(appointments, appt)
	}
	if len(appointments) == 0 {
		return nil, fmt.Errorf("no client accounts to attach appointments to")
	}
	return appointments, nil
}

func (s *seeder) seedTickets() error {
	var operator models.User
	err := s.tx.Where("id_rol = ?", s.roles[RoleOperator]).Order("id").First(&operator).Error
	if err != nil {
		return fmt.Errorf("operator account: %w", err)
	}

	var boxes []models.Container
	if err := s.tx.Order("id").Limit(ticketCount).Find(&boxes).Error; err != nil {
		return err
	}
	var slots []models.Slot
	if err := s.tx.Where("estado = ?", models.SlotStatusFree).Order("id").Limit(containerCount).Find(&slots).Error; err != nil {
		return err
	}
	if len(slots) == 0 {
		return fmt.Errorf("no free slots")
	}

	for i, box := range boxes {
		var count int64
		if err := s.tx.Model(&models.Ticket{}).Where("id_contenedor = ?", box.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		slot := slots[0]
		if i < len(slots) {
			slot = slots[i]
		}
		ticket := models.Ticket{
			EntryTime:   s.now.Add(-time.Duration(i) * time.Hour),
			Status:      models.KnownTicketStatuses[i%len(models.KnownTicketStatuses)],
			SlotID:      slot.ID,
			UserID:      operator.ID,
			ContainerID: box.ID,
		}
		if ticket.Status == models.TicketStatusCompleted {
			exit := s.now
			ticket.ExitTime = &exit
		}
		if err := s.tx.Create(&ticket).Error; err != nil {
			return err
		}
		s.summary.Tickets++

		if ticket.Status == models.TicketStatusInProgress || ticket.Status == models.TicketStatusCompleted {
			if err := s.tx.Model(&models.Slot{}).Where("id = ?", slot.ID).Update("estado", models.SlotStatusOccupied).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// NormalizeTicketStatuses rewrites case and underscore variants of the
// known ticket statuses ("pendiente", "EN_PROCESO") to their canonical
// spelling and returns how many tickets changed.
func NormalizeTicketStatuses(ctx context.Context, db *gorm.DB) (int64, error) {
	var statuses []string
	if err := db.WithContext(ctx).Model(&models.Ticket{}).Distinct().Pluck("estado", &statuses).Error; err != nil {
		return 0, err
	}

	var changed int64
	for _, status := range statuses {
		canonical := models.NormalizeTicketStatus(status)
		if canonical == status {
			continue
		}
		res := db.WithContext(ctx).Model(&models.Ticket{}).Where("estado = ?", status).Update("estado", canonical)
		if res.Error != nil {
			return changed, res.Error
		}
		utils.InfoLogger.Infof("normalized %d tickets from %q to %q", res.RowsAffected, status, canonical)
		changed += res.RowsAffected
	}
	return changed, nil
}
