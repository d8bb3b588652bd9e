package collector

const topOutput = `Processes: 512 total, 3 running, 509 sleeping, 2671 threads
2024/05/01 10:00:00
Load Avg: 2.10, 2.35, 2.41
CPU usage: 12.3% user, 5.1% sys, 82.6% idle
SharedLibs: 512M resident, 98M data, 64M linkedit.
`

const powermetricsCPUOutput = `Machine model: Mac14,2
*** Sampled system activity (Wed May  1 10:00:00 2024 +0200) (1004.12ms elapsed) ***

**** Processor usage ****

E-Cluster HW active frequency: 1020 MHz
E-Cluster HW active residency:  45.50%
E-Cluster idle residency:  54.50%

P0-Cluster HW active frequency: 2100 MHz
P0-Cluster HW active residency:  20.25%
P1-Cluster HW active frequency: 660 MHz
P1-Cluster HW active residency:   5.00%

CPU Power: 1234 mW
GPU Power: 12 mW
ANE Power: 0 mW
Combined Power (CPU + GPU + ANE): 1246 mW
Package Power: 2345.5 mW
`

const powermetricsGPUOutput = `**** GPU usage ****

GPU HW active frequency: 389 MHz
GPU HW active residency:   3.42% (389 MHz: 3.4% 486 MHz:   0%)
GPU SW requested state: (P1 : 100% P2 :   0%)
GPU idle residency:  96.58%
GPU Power: 17 mW
`

const vmStatOutput = `Mach Virtual Memory Statistics: (page size of 16384 bytes)
Pages free:                               12000.
Pages active:                            300000.
Pages inactive:                          290000.
Pages speculative:                         4000.
Pages throttled:                              0.
Pages wired down:                        150000.
Pages purgeable:                           2000.
"Translation faults":                 987654321.
Pages copy-on-write:                   12345678.
Pages zero filled:                    456789012.
Pages reactivated:                      1234567.
Pages purged:                            765432.
File-backed pages:                       200000.
Anonymous pages:                         394000.
Pages stored in compressor:              120000.
Pages occupied by compressor:             50000.
`

const memoryPressureOutput = `The system has 17179869184 (1048576 pages with a page size of 16384).

Stats:
Pages free: 12000
Pages purgeable: 2000

Swap I/O:
Swapins: 0
Swapouts: 0

System-wide memory free percentage: 62%
`

const smartctlOutput = `smartctl 7.4 2023-08-01 r5530 [Darwin 23.4.0 arm64] (local build)
Copyright (C) 2002-23, Bruce Allen, Christian Franke, www.smartmontools.org

=== START OF INFORMATION SECTION ===
Model Number:                       APPLE SSD AP0512Z
Serial Number:                      0ba0123456789abc

=== START OF SMART DATA SECTION ===
SMART overall-health self-assessment test result: PASSED

SMART/Health Information (NVMe Log 0x02)
Critical Warning:                   0x00
Temperature:                        75 Celsius
Available Spare:                    100%
Available Spare Threshold:          99%
Percentage Used:                    3%
Data Units Read:                    23,456,789 [12.0 TB]
Data Units Written:                 12,345,678 [6.32 TB]
`

const dfOutput = `Filesystem     Size   Used  Avail Capacity iused ifree %iused  Mounted on
/dev/disk3s1s1 460Gi   10Gi  300Gi     4%  404k  3.1G    0%   /
`

const diskutilListOutput = `/dev/disk4 (external, physical):
   #:                       TYPE NAME                    SIZE       IDENTIFIER
   0:      GUID_partition_scheme                        *2.0 TB     disk4
   1:                        EFI EFI                     209.7 MB   disk4s1
   2:                 Apple_APFS Container disk5         2.0 TB     disk4s2

/dev/disk6 (external, physical):
   #:                       TYPE NAME                    SIZE       IDENTIFIER
   0:     FDisk_partition_scheme                        *64.0 GB    disk6
   1:               Windows_NTFS USB                     64.0 GB    disk6s1
`

const diskutilInfoOutput = `   Device Identifier:         disk4
   Device Node:               /dev/disk4
   Whole:                     Yes
   Part of Whole:             disk4

   Device / Media Name:       Samsung Portable SSD T7

   Disk Size:                 2.0 TB (2000398934016 Bytes) (exactly 3907029168 512-Byte-Units)
   Device Block Size:         512 Bytes
`

const psOutput = `USER               PID  %CPU %MEM      VSZ    RSS   TT  STAT STARTED      TIME COMMAND
_windowserver      412  35.2  1.1 413552096 190512   ??  Ss   Mon09AM 301:12.07 /System/Library/PrivateFrameworks/SkyLight.framework/Resources/WindowServer -daemon
alice             1301  12.0  4.7 1623410080 790624   ??  S    Mon09AM  85:21.12 /Applications/Google Chrome.app/Contents/MacOS/Google Chrome
alice             2211  98.5  2.0 420242688 335520   ??  R    10:00AM   0:42.01 /usr/local/bin/node server.js
root               100   0.1  0.1 408627120  20512   ??  Ss   Mon09AM   2:01.00 /sbin/launchd
alice             3333   0.0  0.2 408627120  30512   ??  S    Mon09AM   0:01.00 /usr/libexec/idle
alice             4444   bad  0.2 408627120  30512   ??  S    Mon09AM   0:01.00 /usr/bin/broken
alice             5555   7.5  0.3 408627120  30512   ??  S    Mon09AM   0:03.00 /usr/bin/a-very-long-process-name-exceeding-thirty-chars
alice             6666   2.5  0.3 408627120
`
