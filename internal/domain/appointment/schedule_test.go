package appointment

import (
	"errors"
	"testing"
	"time"
)

func mustAppointment(t *testing.T, id string, date time.Time, start, end string) *Appointment {
	t.Helper()

	a, err := NewAppointment(nil, date, start, end, "")
	if err != nil {
		t.Fatalf("NewAppointment(%s, %s) error = %v", start, end, err)
	}
	a.ID = id
	return a
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	tests := []struct {
		name string
		a    *Appointment
		b    *Appointment
		want bool
	}{
		{
			name: "janelas adjacentes não conflitam",
			a:    mustAppointment(t, "a", day, "09:00", "10:00"),
			b:    mustAppointment(t, "b", day, "10:00", "11:00"),
			want: false,
		},
		{
			name: "sobreposição parcial conflita",
			a:    mustAppointment(t, "a", day, "09:00", "10:30"),
			b:    mustAppointment(t, "b", day, "10:00", "11:00"),
			want: true,
		},
		{
			name: "janelas idênticas conflitam",
			a:    mustAppointment(t, "a", day, "09:00", "10:00"),
			b:    mustAppointment(t, "b", day, "09:00", "10:00"),
			want: true,
		},
		{
			name: "janela contida conflita",
			a:    mustAppointment(t, "a", day, "09:00", "12:00"),
			b:    mustAppointment(t, "b", day, "10:00", "11:00"),
			want: true,
		},
		{
			name: "mesmos horários em dias diferentes não conflitam",
			a:    mustAppointment(t, "a", day, "09:00", "10:00"),
			b:    mustAppointment(t, "b", otherDay, "09:00", "10:00"),
			want: false,
		},
		{
			name: "janela de duração zero não conflita",
			a:    mustAppointment(t, "a", day, "09:30", "09:30"),
			b:    mustAppointment(t, "b", day, "09:00", "10:00"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Overlaps(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Overlaps() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}

			// A verificação é simétrica
			reverse, err := Overlaps(tt.b, tt.a)
			if err != nil {
				t.Fatalf("Overlaps() error = %v", err)
			}
			if reverse != got {
				t.Errorf("Overlaps(b, a) = %v, want %v (simetria)", reverse, got)
			}
		})
	}
}

func TestFindConflict(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	booked := mustAppointment(t, "booked", day, "09:00", "10:00")
	later := mustAppointment(t, "later", day, "14:00", "15:00")
	existing := []*Appointment{booked, later}

	t.Run("janela já reservada é rejeitada", func(t *testing.T) {
		proposed := mustAppointment(t, "new", day, "09:00", "10:00")

		conflict, err := FindConflict(existing, proposed)
		if err != nil {
			t.Fatalf("FindConflict() error = %v", err)
		}
		if conflict == nil {
			t.Fatal("FindConflict() = nil, esperava conflito")
		}
		if conflict.ID != "booked" {
			t.Errorf("conflito com ID %q, want %q", conflict.ID, "booked")
		}
	})

	t.Run("edição do próprio agendamento não conflita consigo", func(t *testing.T) {
		proposed := mustAppointment(t, "booked", day, "09:00", "10:00")

		conflict, err := FindConflict(existing, proposed)
		if err != nil {
			t.Fatalf("FindConflict() error = %v", err)
		}
		if conflict != nil {
			t.Errorf("FindConflict() = %v, esperava nil", conflict.ID)
		}
	})

	t.Run("janela livre é aceita", func(t *testing.T) {
		proposed := mustAppointment(t, "new", day, "11:00", "12:00")

		conflict, err := FindConflict(existing, proposed)
		if err != nil {
			t.Fatalf("FindConflict() error = %v", err)
		}
		if conflict != nil {
			t.Errorf("FindConflict() = %v, esperava nil", conflict.ID)
		}
	})
}

func TestNewAppointmentValidation(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "janela válida", start: "09:00", end: "10:00", wantErr: nil},
		{name: "duração zero é aceita", start: "09:00", end: "09:00", wantErr: nil},
		{name: "janela invertida é rejeitada", start: "10:00", end: "09:00", wantErr: ErrInvertedWindow},
		{name: "hora inicial inválida", start: "9am", end: "10:00", wantErr: ErrInvalidTime},
		{name: "hora final inválida", start: "09:00", end: "25:99", wantErr: ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppointment(nil, day, tt.start, tt.end, "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewAppointment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
