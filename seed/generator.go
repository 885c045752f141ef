// Package seed produces realistic dummy inventory in the interchange CSV format.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"it-inventory/asset"
	"it-inventory/interchange"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

var categories = []string{"Laptop", "Desktop", "Server", "Network", "Printer", "Mobile", "Lainnya"}

var brands = map[string][]string{
	"Laptop":  {"Dell", "HP", "Lenovo", "Asus", "Acer", "Apple", "MSI"},
	"Desktop": {"Dell", "HP", "Lenovo", "Acer", "Custom Build"},
	"Server":  {"Dell", "HP", "IBM", "Cisco", "Supermicro"},
	"Network": {"Cisco", "TP-Link", "Ubiquiti", "Mikrotik", "D-Link"},
	"Printer": {"HP", "Canon", "Epson", "Brother", "Xerox"},
	"Mobile":  {"Apple", "Samsung", "Xiaomi", "Oppo", "Vivo"},
	"Lainnya": {"Various", "Generic", "Custom"},
}

var models = map[string][]string{
	"Dell":         {"Latitude 5420", "Latitude 7420", "OptiPlex 7090", "PowerEdge R740"},
	"HP":           {"EliteBook 840", "ProBook 450", "Z2 Tower", "ProLiant DL380"},
	"Lenovo":       {"ThinkPad X1", "ThinkPad T14", "ThinkCentre M70", "ThinkSystem SR650"},
	"Asus":         {"ZenBook 14", "VivoBook 15", "ROG Strix", "ExpertBook B9"},
	"Acer":         {"Aspire 5", "Swift 3", "Predator", "TravelMate"},
	"Apple":        {"MacBook Pro", "MacBook Air", "iMac", "iPhone 14", "iPhone 13"},
	"MSI":          {"Modern 14", "Prestige 15", "GF63"},
	"Cisco":        {"Catalyst 2960", "ASR 1000", "ISR 4000", "Nexus 9000"},
	"TP-Link":      {"Archer AX50", "TL-SG1024", "Deco M5"},
	"Ubiquiti":     {"UniFi AP AC Pro", "EdgeRouter X", "UniFi Dream Machine"},
	"Canon":        {"ImageCLASS MF445dw", "PIXMA G3010", "imageRUNNER"},
	"Epson":        {"EcoTank L3110", "WorkForce Pro", "L5190"},
	"Samsung":      {"Galaxy S23", "Galaxy A54", "Galaxy M14"},
	"Xiaomi":       {"Redmi Note 12", "Poco X5", "Mi 11"},
	"Custom Build": {"Gaming PC", "Workstation", "Office PC"},
	"Various":      {"Model A", "Model B", "Model C"},
}

var priceRanges = map[string][2]int{
	"Laptop":  {8000000, 25000000},
	"Desktop": {6000000, 20000000},
	"Server":  {30000000, 150000000},
	"Network": {1000000, 15000000},
	"Printer": {2000000, 10000000},
	"Mobile":  {3000000, 15000000},
	"Lainnya": {500000, 5000000},
}

var statuses = []string{"Aktif", "Maintenance", "Rusak", "Retired"}

var statusWeights = []int{70, 15, 10, 5}

var locations = []string{"Jakarta", "Bandung", "Surabaya", "Yogyakarta", "Bali", "Medan", "Semarang", "Makassar"}

var departments = []string{"IT", "Finance", "HR", "Marketing", "Sales", "Operations", "R&D", "Customer Service"}

var firstNames = []string{"Ahmad", "Budi", "Citra", "Dewi", "Eko", "Fitri", "Gunawan", "Hani", "Indra", "Joko",
	"Kartika", "Linda", "Made", "Nur", "Oscar", "Putri", "Rudi", "Sari", "Tono", "Wati"}

var lastNames = []string{"Susanto", "Wijaya", "Prasetyo", "Santoso", "Kurniawan", "Hidayat", "Setiawan", "Putra",
	"Hermawan", "Suharto", "Rahman", "Lestari", "Nuraini", "Wibowo", "Permana"}

var notes = map[string][]string{
	"Aktif": {
		"Kondisi baik, berfungsi normal",
		"Unit baru, garansi aktif",
		"Performa optimal",
		"Sudah dikonfigurasi dan siap pakai",
		"Update software terbaru",
	},
	"Maintenance": {
		"Sedang dilakukan upgrade RAM",
		"Pembersihan dan pengecekan rutin",
		"Update sistem operasi",
		"Penggantian thermal paste",
		"Kalibrasi dan testing",
	},
	"Rusak": {
		"Layar rusak, menunggu spare part",
		"Motherboard bermasalah",
		"Hard disk failure",
		"Battery tidak berfungsi",
		"Menunggu keputusan repair/replace",
	},
	"Retired": {
		"Unit sudah tidak digunakan",
		"Spesifikasi sudah outdated",
		"Diganti dengan unit baru",
		"Akan didonasikan",
		"Menunggu disposal",
	},
}

type Generator struct {
	rnd *rand.Rand
	now time.Time
}

func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed)), now: now}
}

func (g *Generator) pick(values []string) string {
	return values[g.rnd.Intn(len(values))]
}

func (g *Generator) weightedStatus() string {
	total := 0
	for _, w := range statusWeights {
		total += w
	}
	n := g.rnd.Intn(total)
	for i, w := range statusWeights {
		if n < w {
			return statuses[i]
		}
		n -= w
	}
	return statuses[0]
}

func (g *Generator) serialNumber() string {
	return fmt.Sprintf("SN%d%c%c", 100000+g.rnd.Intn(900000), 'A'+rune(g.rnd.Intn(26)), 'A'+rune(g.rnd.Intn(26)))
}

func (g *Generator) email(first string, last string, department string) string {
	const domain = "company.com"
	f, l := strings.ToLower(first), strings.ToLower(last)
	formats := []string{
		fmt.Sprintf("%s.%s@%s", f, l, domain),
		fmt.Sprintf("%s%s@%s", f[:1], l, domain),
		fmt.Sprintf("%s%s@%s", f, l[:1], domain),
		fmt.Sprintf("%s.%s@%s.%s", f, l, strings.ReplaceAll(strings.ToLower(department), " ", ""), domain),
	}
	return g.pick(formats)
}

// Row generates the interchange cells for the asset with the given sequence number.
func (g *Generator) Row(sequence int) []string {
	category := g.pick(categories)
	brand := g.pick(brands[category])
	model := "Standard Model"
	if ms, ok := models[brand]; ok {
		model = g.pick(ms)
	}
	status := g.weightedStatus()
	location := g.pick(locations)

	purchase := g.now.AddDate(0, 0, -g.rnd.Intn(1826))
	warranty := purchase.AddDate(0, 0, 365*(1+g.rnd.Intn(3)))

	assignedTo, email := "", ""
	if status == "Aktif" || status == "Maintenance" {
		department := g.pick(departments)
		first, last := g.pick(firstNames), g.pick(lastNames)
		assignedTo = fmt.Sprintf("%s %s - %s", first, last, department)
		email = g.email(first, last, department)
	}

	pr := priceRanges[category]
	price := pr[0] + g.rnd.Intn(pr[1]-pr[0]+1)

	return []string{
		asset.FormatCode(uint32(sequence)),
		fmt.Sprintf("%s %s - %s", brand, model, location),
		category,
		brand,
		model,
		g.serialNumber(),
		status,
		location,
		assignedTo,
		email,
		purchase.Format("2006-01-02"),
		warranty.Format("2006-01-02"),
		strconv.Itoa(price),
		g.pick(notes[status]),
	}
}

// Write emits count generated assets as interchange CSV, numbered from IT-0001.
func (g *Generator) Write(w io.Writer, count int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(interchange.Header); err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		if err := cw.Write(g.Row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
