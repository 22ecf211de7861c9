package appointment

// Overlaps verifica se duas janelas de agendamento se sobrepõem. As janelas
// são semiabertas [início, fim): janelas adjacentes não conflitam e janelas
// de duração zero nunca conflitam. Dias diferentes nunca se sobrepõem porque
// a comparação usa os instantes combinados de data e hora.
func Overlaps(a, b *Appointment) (bool, error) {
	aStart, err := a.StartInstant()
	if err != nil {
		return false, err
	}
	aEnd, err := a.EndInstant()
	if err != nil {
		return false, err
	}
	bStart, err := b.StartInstant()
	if err != nil {
		return false, err
	}
	bEnd, err := b.EndInstant()
	if err != nil {
		return false, err
	}

	return bStart.Before(aEnd) && aStart.Before(bEnd), nil
}

// FindConflict procura entre os agendamentos existentes algum que conflite
// com a janela proposta. O agendamento com o mesmo ID da proposta é ignorado,
// para que a edição de um agendamento não conflite com ele mesmo.
//
// A verificação inspeciona apenas o conjunto carregado no momento; não é uma
// restrição imposta pelo banco.
func FindConflict(existing []*Appointment, proposed *Appointment) (*Appointment, error) {
	for _, other := range existing {
		if other.ID == proposed.ID {
			continue
		}

		conflict, err := Overlaps(proposed, other)
		if err != nil {
			return nil, err
		}
		if conflict {
			return other, nil
		}
	}

	return nil, nil
}
