package page

// Brisa returns the Brisa Clima brochure page.
func Brisa() Document {
	return Document{
		Title:   "Brisa Clima",
		Tagline: "Climatización para hogares y negocios",
		Nav: []NavLink{
			{Label: "Inicio", Fragment: "inicio"},
			{Label: "Servicios", Fragment: "servicios"},
			{Label: "Nosotros", Fragment: "nosotros"},
			{Label: "Logros", Fragment: "logros"},
			{Label: "Contacto", Fragment: "contacto"},
		},
		Sections: []Section{
			{
				ID:    "inicio",
				Title: "Aire fresco, todo el año",
				Paragraphs: []string{
					"Instalación, mantenimiento y reparación de equipos de aire acondicionado y calefacción. Atendemos hogares, oficinas y locales comerciales con presupuesto cerrado y garantía escrita.",
					"Pida su visita técnica sin compromiso. Respondemos el mismo día.",
				},
			},
			{
				ID:    "servicios",
				Title: "Servicios",
				Paragraphs: []string{
					"Instalación de splits y conductos: equipos de las principales marcas, dimensionados para cada espacio.",
					"Mantenimiento preventivo: limpieza de filtros, control de gas y revisión eléctrica con informe.",
					"Reparación urgente: diagnóstico en 24 horas y repuestos originales.",
					"Bomba de calor y aerotermia: calefacción eficiente con una sola máquina.",
				},
			},
			{
				ID:    "nosotros",
				Title: "Nosotros",
				Paragraphs: []string{
					"Somos un equipo familiar de técnicos frigoristas certificados. Trabajamos en toda el área metropolitana desde 2009.",
				},
				Figures: []Figure{
					{
						ID:      "fig-taller",
						Caption: "Nuestro taller",
						Placeholder: []string{
							"................",
							".   cargando   .",
							"................",
						},
						Deferred: []string{
							" ____________________ ",
							"|  BRISA CLIMA       |",
							"|  [==] [==] [==]    |",
							"|__taller-central____|",
						},
						Lazy:      true,
						BoxHeight: 5,
					},
					{
						ID:      "fig-flota",
						Caption: "Flota de servicio",
						Placeholder: []string{
							"................",
							".   cargando   .",
							"................",
						},
						Deferred: []string{
							"   ______        ",
							"  /|_||_\\`.__    ",
							" (   _    _ _\\   ",
							" =`-(_)--(_)-'   ",
						},
						Lazy:      true,
						BoxHeight: 5,
					},
				},
			},
			{
				ID:    "logros",
				Title: "Logros",
				Paragraphs: []string{
					"Números que nos avalan.",
				},
				Counters: []Counter{
					{ID: "stat-anios", Label: "Años de experiencia", Target: 15},
					{ID: "stat-instalaciones", Label: "Instalaciones", Target: 1200, Suffix: "+"},
					{ID: "stat-clientes", Label: "Clientes satisfechos", Target: 850, Suffix: "+"},
					{ID: "stat-satisfaccion", Label: "Satisfacción", Target: 98, Suffix: "%"},
				},
				Stats: true,
			},
			{
				ID:    "contacto",
				Title: "Contacto",
				Paragraphs: []string{
					"Cuéntenos qué necesita y le llamamos.",
				},
				HasForm: true,
			},
		},
	}
}
