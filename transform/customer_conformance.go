package transform

import (
	"sort"
	"strings"
	"time"

	"github.com/LilVoxy/coursework_dwh/models"
	"github.com/LilVoxy/coursework_dwh/utils"
)

// CustomerConformer отвечает за приведение сырых записей клиентов:
// дедупликацию по бизнес-ключу и нормализацию полей
type CustomerConformer struct {
	logger *utils.ETLLogger
}

// NewCustomerConformer создает новый экземпляр CustomerConformer
func NewCustomerConformer(logger *utils.ETLLogger) *CustomerConformer {
	return &CustomerConformer{
		logger: logger,
	}
}

// ConformCustomers приводит сырые записи клиентов к одной записи на бизнес-ключ
// Записи без бизнес-ключа отбрасываются: их невозможно адресовать ниже по потоку
func (c *CustomerConformer) ConformCustomers(raw []models.RawCustomer, loadedAt time.Time) []models.Customer {
	c.logger.Debug("Приведение записей клиентов...")

	if len(raw) == 0 {
		c.logger.Debug("Нет записей клиентов для приведения")
		return []models.Customer{}
	}

	// Группируем записи по бизнес-ключу, отбрасывая записи без ключа
	byKey := make(map[int][]models.RawCustomer)
	dropped := 0
	for _, r := range raw {
		if r.ID == nil {
			dropped++
			continue
		}
		byKey[*r.ID] = append(byKey[*r.ID], r)
	}

	if dropped > 0 {
		c.logger.Debug("Отброшено записей клиентов без бизнес-ключа: %d", dropped)
	}

	// Для каждого ключа выбираем экземпляр с максимальной меткой создания;
	// при равенстве меток побеждает пришедший позже (детерминированный
	// вторичный порядок — порядок прихода в батче)
	conformed := make([]models.Customer, 0, len(byKey))
	for id, group := range byKey {
		winner := pickLatestCustomer(group)
		conformed = append(conformed, models.Customer{
			ID:            id,
			Number:        strings.TrimSpace(winner.Number),
			FirstName:     strings.TrimSpace(winner.FirstName),
			LastName:      strings.TrimSpace(winner.LastName),
			MaritalStatus: models.ParseMaritalStatus(winner.MaritalStatus),
			Gender:        models.ParseGender(winner.Gender),
			CreatedAt:     winner.CreatedAt,
			LoadedAt:      loadedAt,
		})
	}

	// Упорядочиваем по бизнес-ключу для воспроизводимости выхода
	sort.Slice(conformed, func(i, j int) bool {
		return conformed[i].ID < conformed[j].ID
	})

	c.logger.Info("Приведение клиентов завершено. Записей: %d (из %d сырых)", len(conformed), len(raw))
	return conformed
}

// pickLatestCustomer выбирает запись-победителя внутри группы дубликатов
func pickLatestCustomer(group []models.RawCustomer) models.RawCustomer {
	winner := group[0]
	for _, candidate := range group[1:] {
		if laterCustomer(candidate, winner) {
			winner = candidate
		}
	}
	return winner
}

// laterCustomer сообщает, что запись a новее записи b:
// по метке создания, при равенстве — по порядку прихода
// Запись без метки создания считается старше любой с меткой
func laterCustomer(a, b models.RawCustomer) bool {
	switch {
	case a.CreatedAt == nil && b.CreatedAt == nil:
		return a.ArrivalSeq > b.ArrivalSeq
	case a.CreatedAt == nil:
		return false
	case b.CreatedAt == nil:
		return true
	case a.CreatedAt.Equal(*b.CreatedAt):
		return a.ArrivalSeq > b.ArrivalSeq
	default:
		return a.CreatedAt.After(*b.CreatedAt)
	}
}
