package modem

import (
	"fmt"

	"github.com/nthnn/SIM900/at"
)

// NumberType is the type-of-address octet of a stored number.
type NumberType int

const (
	NumberTypeUnknown       NumberType = 0
	NumberTypeNational      NumberType = 129
	NumberTypeInternational NumberType = 145
)

// NumberTypeFromInt maps 129 and 145 to their types and anything else to
// NumberTypeUnknown.
func NumberTypeFromInt(v int) NumberType {
	switch NumberType(v) {
	case NumberTypeNational, NumberTypeInternational:
		return NumberType(v)
	default:
		return NumberTypeUnknown
	}
}

// CardService is the service class reported next to the subscriber number.
type CardService int

const (
	CardServiceAsync CardService = iota
	CardServiceSync
	CardServicePadAccess
	CardServicePacket
	CardServiceVoice
	CardServiceFax
)

// CardServiceFromInt converts a wire value, mapping anything out of range to
// CardServiceAsync.
func CardServiceFromInt(v int) CardService {
	if v < int(CardServiceAsync) || v > int(CardServiceFax) {
		return CardServiceAsync
	}
	return CardService(v)
}

// Contact is a phonebook entry or the SIM's own number.
type Contact struct {
	Name       string
	Number     string
	NumberType NumberType
	// Type is the raw type-of-address as reported.
	Type    int
	Speed   int
	Service CardService
}

// PhonebookCapacity is the usage of the selected phonebook storage.
type PhonebookCapacity struct {
	MemoryType string
	Used       int
	Max        int
}

// SavePhonebook writes c at index. An unknown number type is stored as
// national.
func (m *Modem) SavePhonebook(index int, c Contact) bool {
	numberType := c.NumberType
	if numberType == NumberTypeUnknown {
		numberType = NumberTypeNational
	}
	return m.expectOK(fmt.Sprintf(at.CmdPhonebookWrite, index, c.Number, int(numberType), c.Name))
}

// RetrievePhonebook reads the entry at index.
func (m *Modem) RetrievePhonebook(index int) Contact {
	return ParsePhonebookEntry(at.QueryValue(m.query(fmt.Sprintf(at.CmdPhonebookRead, index))))
}

// DeletePhonebook clears the entry at index.
func (m *Modem) DeletePhonebook(index int) bool {
	return m.expectOK(fmt.Sprintf(at.CmdPhonebookDelete, index))
}

// PhonebookCapacity reports the selected storage and how full it is.
func (m *Modem) PhonebookCapacity() PhonebookCapacity {
	return ParsePhonebookCapacity(at.QueryValue(m.query(at.CmdPhonebookStore)))
}

// CardNumber reads the subscriber number stored on the SIM.
func (m *Modem) CardNumber() Contact {
	return ParseCardNumber(at.QueryValue(m.query(at.CmdOwnNumber)))
}

// ParsePhonebookEntry decodes `index,"number",type,"name"`.
func ParsePhonebookEntry(value string) Contact {
	var c Contact
	fields := at.Fields(value)
	if len(fields) > 1 {
		c.Number = at.Unquote(fields[1])
	}
	if len(fields) > 2 {
		c.Type = atoi(fields[2])
		c.NumberType = NumberTypeFromInt(c.Type)
	}
	if len(fields) > 3 {
		c.Name = at.Unquote(fields[3])
	}
	return c
}

// ParseCardNumber decodes `"name","number",type,speed,service`.
func ParseCardNumber(value string) Contact {
	var c Contact
	fields := at.Fields(value)
	if len(fields) > 0 {
		c.Name = at.Unquote(fields[0])
	}
	if len(fields) > 1 {
		c.Number = at.Unquote(fields[1])
	}
	if len(fields) > 2 {
		c.Type = atoi(fields[2])
		c.NumberType = NumberTypeFromInt(c.Type)
	}
	if len(fields) > 3 {
		c.Speed = atoi(fields[3])
	}
	if len(fields) > 4 {
		c.Service = CardServiceFromInt(atoi(fields[4]))
	}
	return c
}

// ParsePhonebookCapacity decodes `"mem",used,max`.
func ParsePhonebookCapacity(value string) PhonebookCapacity {
	var p PhonebookCapacity
	fields := at.Fields(value)
	if len(fields) > 0 {
		p.MemoryType = at.Unquote(fields[0])
	}
	if len(fields) > 1 {
		p.Used = atoi(fields[1])
	}
	if len(fields) > 2 {
		p.Max = atoi(fields[2])
	}
	return p
}
