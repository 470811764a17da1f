package main

import (
	"context"
	"log"
	"time"

	"techstore-ai-be/internal/config"
	"techstore-ai-be/internal/entity"
	"techstore-ai-be/internal/repository/implementation"
	"techstore-ai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type seedProduct struct {
	name        string
	category    string
	price       float64
	stock       int
	description string
	brand       string
	specs       string
	releaseDate string
}

type seedUser struct {
	fullName       string
	email          string
	phone          string
	totalPurchases int
}

type seedSale struct {
	userIdx    int
	productIdx int
	quantity   int
	totalPrice float64
}

type seedTechModel struct {
	name        string
	modelType   string
	brand       string
	specs       string
	description string
	extraData   string
}

var products = []seedProduct{
	{"Laptop Dell XPS 15", "Laptops", 1299.99, 25, "Laptop de alto rendimiento con procesador Intel i7, 16GB RAM, SSD 512GB", "Dell", "Intel i7-12700H, 16GB DDR4, SSD 512GB NVMe, Pantalla 15.6\" FHD", "2023-03-15"},
	{"MacBook Pro 14\" M3", "Laptops", 1999.99, 15, "MacBook Pro con chip M3, perfecta para profesionales creativos", "Apple", "Apple M3, 16GB RAM, SSD 512GB, Pantalla 14.2\" Retina", "2023-10-30"},
	{"Laptop HP Pavilion 15", "Laptops", 699.99, 40, "Laptop económica ideal para trabajo y estudio", "HP", "AMD Ryzen 5, 8GB RAM, SSD 256GB, Pantalla 15.6\" HD", "2023-01-20"},
	{"Laptop Lenovo ThinkPad X1", "Laptops", 1499.99, 20, "Laptop empresarial ultraportátil y resistente", "Lenovo", "Intel i7-1355U, 16GB RAM, SSD 512GB, Pantalla 14\" FHD", "2023-05-10"},
	{"iPhone 15 Pro", "Smartphones", 999.99, 50, "El smartphone más avanzado de Apple con chip A17 Pro", "Apple", "A17 Pro, 256GB almacenamiento, Cámara 48MP, Pantalla 6.1\" Super Retina", "2023-09-22"},
	{"Samsung Galaxy S24 Ultra", "Smartphones", 1199.99, 35, "Smartphone flagship con S Pen y cámara de 200MP", "Samsung", "Snapdragon 8 Gen 3, 256GB, Cámara 200MP, Pantalla 6.8\" Dynamic AMOLED", "2024-01-17"},
	{"Google Pixel 8 Pro", "Smartphones", 899.99, 30, "Smartphone con IA avanzada y cámara excepcional", "Google", "Tensor G3, 128GB, Cámara 50MP, Pantalla 6.7\" LTPO OLED", "2023-10-04"},
	{"iPad Pro 12.9\" M2", "Tablets", 1099.99, 20, "Tablet profesional con chip M2 y pantalla Liquid Retina XDR", "Apple", "Apple M2, 256GB, Pantalla 12.9\" Liquid Retina XDR, Compatible con Apple Pencil", "2022-10-26"},
	{"Samsung Galaxy Tab S9", "Tablets", 799.99, 25, "Tablet Android premium con S Pen incluido", "Samsung", "Snapdragon 8 Gen 2, 256GB, Pantalla 11\" AMOLED, S Pen incluido", "2023-08-11"},
	{"Nintendo Switch OLED", "Gaming", 349.99, 60, "Consola portátil con pantalla OLED mejorada", "Nintendo", "Pantalla OLED 7\", 64GB almacenamiento, Joy-Con incluidos", "2021-10-08"},
	{"PlayStation 5", "Gaming", 499.99, 45, "Consola de videojuegos de última generación", "Sony", "AMD Zen 2, 16GB GDDR6, SSD 825GB, Ray Tracing", "2020-11-12"},
	{"Xbox Series X", "Gaming", 499.99, 40, "Consola más potente de Microsoft", "Microsoft", "AMD Zen 2, 16GB GDDR6, SSD 1TB, 4K 120fps", "2020-11-10"},
	{"Monitor LG UltraGear 27\"", "Monitores", 399.99, 30, "Monitor gaming 4K con 144Hz y HDR", "LG", "27\" 4K UHD, 144Hz, HDR10, G-Sync Compatible", "2023-06-15"},
	{"Monitor Dell UltraSharp 32\"", "Monitores", 599.99, 20, "Monitor profesional para diseño y edición", "Dell", "32\" 4K UHD, 99% sRGB, USB-C, Pantalla IPS", "2023-04-20"},
	{"Teclado Mecánico Logitech MX", "Periféricos", 149.99, 50, "Teclado mecánico inalámbrico con retroiluminación RGB", "Logitech", "Switches mecánicos, RGB, Bluetooth y USB, Batería recargable", "2023-02-10"},
	{"Mouse Logitech G Pro X", "Periféricos", 129.99, 55, "Mouse gaming profesional ultra ligero", "Logitech", "25K DPI, 63g peso, RGB, Batería 70 horas", "2023-03-05"},
	{"Auriculares Sony WH-1000XM5", "Audio", 399.99, 35, "Auriculares inalámbricos con cancelación de ruido activa", "Sony", "Cancelación de ruido ANC, 30h batería, Bluetooth 5.2, Hi-Res Audio", "2022-05-12"},
	{"AirPods Pro 2", "Audio", 249.99, 60, "Auriculares inalámbricos con cancelación de ruido activa", "Apple", "Cancelación de ruido activa, 6h batería, Estuche con carga MagSafe", "2022-09-23"},
	{"SSD Samsung 980 PRO 1TB", "Almacenamiento", 129.99, 80, "SSD NVMe de alto rendimiento para gaming y trabajo", "Samsung", "1TB NVMe PCIe 4.0, 7000MB/s lectura, 5000MB/s escritura", "2020-09-22"},
	{"Disco Duro Externo Seagate 2TB", "Almacenamiento", 79.99, 70, "Disco duro externo portátil USB 3.0", "Seagate", "2TB, USB 3.0, Compatible con PC y Mac", "2022-01-15"},
	{"Router ASUS ROG AXE300", "Redes", 299.99, 25, "Router WiFi 6E para gaming y altas velocidades", "ASUS", "WiFi 6E, Tri-band, 10Gbps WAN", "2024-02-10"},
	{"Cámara Canon EOS R6", "Cámaras", 2499.99, 10, "Cámara mirrorless profesional con estabilización", "Canon", "CMOS 20MP, 4K60, IBIS", "2021-07-15"},
	{"Google Nest Audio", "Smart Home", 99.99, 50, "Altavoz inteligente con Google Assistant", "Google", "Altavoz inteligente, alta calidad de sonido", "2021-10-05"},
	{"Fitbit Charge 6", "Wearables", 179.99, 60, "Pulsera de actividad con GPS y monitoreo avanzado de salud", "Fitbit", "Monitor de ritmo cardíaco, GPS integrado", "2024-01-20"},
}

var users = []seedUser{
	{"Juan Pérez", "juan.perez@email.com", "+34 600 123 456", 3},
	{"María García", "maria.garcia@email.com", "+34 600 234 567", 5},
	{"Carlos López", "carlos.lopez@email.com", "+34 600 345 678", 2},
	{"Ana Martínez", "ana.martinez@email.com", "+34 600 456 789", 7},
	{"Luis Rodríguez", "luis.rodriguez@email.com", "+34 600 567 890", 1},
	{"Laura Sánchez", "laura.sanchez@email.com", "+34 600 678 901", 4},
	{"Pedro Fernández", "pedro.fernandez@email.com", "+34 600 789 012", 6},
	{"Sofía Torres", "sofia.torres@email.com", "+34 600 890 123", 2},
	{"Miguel Ruiz", "miguel.ruiz@email.com", "+34 600 901 234", 3},
	{"Elena Díaz", "elena.diaz@email.com", "+34 600 012 345", 8},
	{"Oscar Muñoz", "oscar.munoz@email.com", "+34 600 111 222", 2},
	{"Patricia Vega", "patricia.vega@email.com", "+34 600 222 333", 4},
}

var sales = []seedSale{
	{0, 0, 1, 1299.99},
	{1, 4, 2, 1999.98},
	{2, 9, 1, 349.99},
	{3, 1, 1, 1999.99},
	{4, 14, 1, 149.99},
	{5, 17, 1, 299.99},
	{6, 18, 2, 2499.98},
}

var techModels = []seedTechModel{
	{"iPhone 15 Pro Max", "Smartphone", "Apple", "A17 Pro, 256GB, Cámara 48MP, Pantalla 6.7\" Super Retina XDR", "El smartphone más avanzado de Apple con chip A17 Pro y cámara profesional", `{"precio":1199,"stock":50,"colores":["Titanio Natural","Titanio Azul","Titanio Blanco","Titanio Negro"],"año_lanzamiento":2023}`},
	{"Samsung Galaxy S24 Ultra", "Smartphone", "Samsung", "Snapdragon 8 Gen 3, 256GB, Cámara 200MP, Pantalla 6.8\" Dynamic AMOLED", "Smartphone flagship con S Pen y cámara de 200MP", `{"precio":1299,"stock":35,"colores":["Negro","Violeta","Gris","Amarillo"],"año_lanzamiento":2024}`},
	{"MacBook Pro 16\" M3 Max", "Laptop", "Apple", "Apple M3 Max, 36GB RAM, SSD 1TB, Pantalla 16.2\" Liquid Retina XDR", "Laptop profesional de alto rendimiento para creativos", `{"precio":3999,"stock":15,"procesador":"M3 Max","memoria":"36GB","almacenamiento":"1TB SSD"}`},
	{"Dell XPS 15", "Laptop", "Dell", "Intel i7-13700H, 16GB RAM, SSD 512GB, Pantalla 15.6\" OLED", "Laptop premium con pantalla OLED y excelente rendimiento", `{"precio":1899,"stock":25,"procesador":"Intel i7-13700H","memoria":"16GB DDR5","almacenamiento":"512GB NVMe"}`},
	{"PlayStation 5", "Consola", "Sony", "AMD Zen 2, 16GB GDDR6, SSD 825GB, Ray Tracing, 4K 120fps", "Consola de videojuegos de última generación", `{"precio":499,"stock":45,"versiones":["Standard","Digital Edition"],"año_lanzamiento":2020}`},
	{"Nintendo Switch OLED", "Consola", "Nintendo", "Pantalla OLED 7\", 64GB almacenamiento, Joy-Con incluidos", "Consola portátil con pantalla OLED mejorada", `{"precio":349,"stock":60,"colores":["Blanco","Neón Rojo/Azul"],"año_lanzamiento":2021}`},
	{"iPad Pro 12.9\" M2", "Tablet", "Apple", "Apple M2, 256GB, Pantalla 12.9\" Liquid Retina XDR, Compatible con Apple Pencil", "Tablet profesional con chip M2 y pantalla Liquid Retina XDR", `{"precio":1099,"stock":20,"tamaños":["11\"","12.9\""],"año_lanzamiento":2022}`},
	{"Monitor LG UltraGear 27\"", "Monitor", "LG", "27\" 4K UHD, 144Hz, HDR10, G-Sync Compatible, IPS", "Monitor gaming 4K con alta frecuencia de refresco", `{"precio":599,"stock":30,"resolucion":"3840x2160","frecuencia":"144Hz","panel":"IPS"}`},
	{"Auriculares Sony WH-1000XM5", "Audio", "Sony", "Cancelación de ruido ANC, 30h batería, Bluetooth 5.2, Hi-Res Audio", "Auriculares inalámbricos premium con cancelación de ruido activa", `{"precio":399,"stock":35,"bateria":"30 horas","conectividad":"Bluetooth 5.2","cancelacion_ruido":true}`},
	{"SSD Samsung 980 PRO 2TB", "Almacenamiento", "Samsung", "2TB NVMe PCIe 4.0, 7000MB/s lectura, 5000MB/s escritura", "SSD NVMe de alto rendimiento para gaming y trabajo profesional", `{"precio":199,"stock":80,"capacidad":"2TB","velocidad_lectura":"7000MB/s","velocidad_escritura":"5000MB/s","interfaz":"PCIe 4.0"}`},
	{"Google Nest Audio", "Smart Speaker", "Google", "Altavoz inteligente, 1 unidad", "Altavoz inteligente para reproducir música y controlar dispositivos del hogar", `{"precio":99,"stock":50}`},
	{"Bose QuietComfort 45", "Audio", "Bose", "Cancelación de ruido, 24h batería", "Auriculares premium con excelente cancelación de ruido", `{"precio":349,"stock":20}`},
	{"Fitbit Charge 6", "Wearable", "Fitbit", "GPS integrado, monitor de sueño", "Pulsera de actividad con métricas avanzadas", `{"precio":179,"stock":60}`},
	{"DJI Mini 4", "Drone", "DJI", "4K, 3-ejes, batería 30 min", "Drone compacto para fotografía aérea", `{"precio":899,"stock":12}`},
}

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, database.PoolConfig{
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	ctx := context.Background()
	productRepo := implementation.NewProductRepository(gormDB)
	userRepo := implementation.NewUserRepository(gormDB)
	saleRepo := implementation.NewSaleRepository(gormDB)
	techModelRepo := implementation.NewTechModelRepository(gormDB)

	color.Cyan("Seeding products...")
	productEntities := make([]*entity.Product, len(products))
	for i, p := range products {
		e := &entity.Product{
			Id:          uuid.New(),
			Name:        p.name,
			Category:    p.category,
			Price:       p.price,
			Stock:       p.stock,
			Description: ptr(p.description),
			Brand:       ptr(p.brand),
			Specs:       ptr(p.specs),
			ReleaseDate: ptr(p.releaseDate),
			CreatedAt:   time.Now(),
		}
		if err := productRepo.Create(ctx, e); err != nil {
			log.Fatalf("Failed to seed product %q: %v", p.name, err)
		}
		productEntities[i] = e
	}
	color.Green("✅ Inserted %d products", len(products))

	color.Cyan("Seeding users...")
	userEntities := make([]*entity.User, len(users))
	for i, u := range users {
		e := &entity.User{
			Id:             uuid.New(),
			FullName:       u.fullName,
			Email:          u.email,
			Phone:          ptr(u.phone),
			RegisteredAt:   time.Now(),
			TotalPurchases: u.totalPurchases,
			Active:         true,
		}
		if err := userRepo.Create(ctx, e); err != nil {
			log.Fatalf("Failed to seed user %q: %v", u.email, err)
		}
		userEntities[i] = e
	}
	color.Green("✅ Inserted %d users", len(users))

	color.Cyan("Seeding sales...")
	for _, s := range sales {
		e := &entity.Sale{
			Id:         uuid.New(),
			UserId:     userEntities[s.userIdx].Id,
			ProductId:  productEntities[s.productIdx].Id,
			Quantity:   s.quantity,
			TotalPrice: s.totalPrice,
			SoldAt:     time.Now(),
		}
		if err := saleRepo.Create(ctx, e); err != nil {
			log.Fatalf("Failed to seed sale: %v", err)
		}
	}
	color.Green("✅ Inserted %d sales", len(sales))

	color.Cyan("Seeding tech models...")
	for _, m := range techModels {
		now := time.Now()
		e := &entity.TechModel{
			Id:          uuid.New(),
			Name:        m.name,
			Type:        m.modelType,
			Brand:       ptr(m.brand),
			Specs:       ptr(m.specs),
			Description: ptr(m.description),
			ExtraData:   ptr(m.extraData),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := techModelRepo.Create(ctx, e); err != nil {
			log.Fatalf("Failed to seed tech model %q: %v", m.name, err)
		}
	}
	color.Green("✅ Inserted %d tech models", len(techModels))

	color.Green("\n🎉 Database seeded successfully")
}

func ptr(s string) *string {
	return &s
}
