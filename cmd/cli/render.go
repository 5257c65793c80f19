package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"nivlek-client/internal/pkg/dto/responses"
	"nivlek-client/internal/pkg/utils"

	"github.com/olekukonko/tablewriter"
)

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func renderPatients(list []responses.Patient) {
	if len(list) == 0 {
		fmt.Println("No patients found.")
		return
	}
	table := newTable([]string{"ID", "Name", "MRN", "Age", "Gender", "Phone"})
	now := time.Now()
	for _, p := range list {
		age := "-"
		if years := utils.AgeFromBirthDate(p.DateOfBirth, now); years >= 0 {
			age = strconv.Itoa(years)
		}
		table.Append([]string{p.ID, p.Name, p.MRN, age, p.Gender, p.Phone})
	}
	table.Render()
}

func renderAppointments(list []responses.Appointment) {
	if len(list) == 0 {
		fmt.Println("No appointments found.")
		return
	}
	table := newTable([]string{"ID", "Patient", "Doctor", "Date", "Duration", "Type", "Status"})
	for _, a := range list {
		table.Append([]string{
			a.ID, a.PatientName, a.DoctorName, a.AppointmentDate,
			strconv.Itoa(a.Duration) + " min", a.Type, a.Status,
		})
	}
	table.Render()
}

func renderMedications(list []responses.Medication) {
	if len(list) == 0 {
		fmt.Println("No medications found.")
		return
	}
	table := newTable([]string{"ID", "Patient", "Name", "Dosage", "Frequency", "Route", "Status"})
	for _, m := range list {
		table.Append([]string{m.ID, m.PatientName, m.Name, m.Dosage, m.Frequency, m.Route, m.Status})
	}
	table.Render()
}

func renderUsers(list []responses.UserProfile) {
	if len(list) == 0 {
		fmt.Println("No users found.")
		return
	}
	table := newTable([]string{"ID", "Name", "Email", "Role", "Created"})
	for _, u := range list {
		table.Append([]string{u.ID, u.Name, u.Email, u.Role, u.CreatedAt})
	}
	table.Render()
}

func renderKeyValues(pairs [][2]string) {
	table := newTable([]string{"Metric", "Value"})
	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}
	table.Render()
}

func renderDistribution(title string, counts map[string]int) {
	fmt.Println(title)
	table := newTable([]string{"Key", "Count"})
	for key, count := range counts {
		table.Append([]string{key, strconv.Itoa(count)})
	}
	table.Render()
}
